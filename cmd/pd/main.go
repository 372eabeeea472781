package main

import "github.com/Eng-ReQTeCH/perect-day-tracker/cmd/pd/root"

func main() {
	root.Execute()
}
