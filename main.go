// NotePal - notes, tasks, drawings, and reminders from your terminal
package main

import (
	"os"

	"github.com/notepal/notepal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
