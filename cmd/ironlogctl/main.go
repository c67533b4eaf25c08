package main

import "github.com/2beens/ironlog/internal/ironlogctl"

func main() {
	ironlogctl.Execute()
}
