// Tripsplice edits the flights and hotels arrays of generated JSX trip pages.
package main

import "github.com/mouse-blink/tripsplice/cmd"

func main() {
	cmd.Execute()
}
