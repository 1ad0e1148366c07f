package level

type Parser interface {
	// Parse reads a catalog from file, or the built-in catalog when file is
	// empty.
	Parse(file string) (*Catalog, error)
}
