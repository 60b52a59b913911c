// Command packkit is the authoring and inspection tool for industry
// packs: validate pack files, export and import the shareable transport
// format, merge customizations, and run detection against a dataset's
// column headers.
package main

func main() {
	Execute()
}
