// Command deck builds PowerPoint presentations from TOML or JSON deck files.
package main

func main() {
	Execute()
}
