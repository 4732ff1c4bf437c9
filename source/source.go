// Package source loads the catalogues of candidate renditions produced by external extraction tooling.
package source

// Source is a place catalogues can be read from.
type Source interface {
	// Name returns a human readable name.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// List returns every catalogue the source knows about.
	List() ([]*Catalogue, error)

	// Catalogue returns the catalogue with the given id.
	Catalogue(id string) (*Catalogue, error)
}
