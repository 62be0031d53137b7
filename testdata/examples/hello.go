// Build a tiny layer stack and compile it.
// The example favours clarity over realism.

package main

import "fmt"

func main() {
	fmt.Println("hello widgets")
}
