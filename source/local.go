package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/safeplay-cli/safeplay/filesystem"
	"github.com/safeplay-cli/safeplay/log"
	"github.com/safeplay-cli/safeplay/where"
	"github.com/samber/lo"
)

// Extension of catalogue documents.
const Extension = ".json"

// Local reads catalogue documents from a directory, one <id>.json per piece of content.
type Local struct {
	dir string
}

// NewLocal returns a source over dir.
func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

// Builtins returns the sources shipped with the application.
func Builtins() []Source {
	return []Source{NewLocal(where.Catalogues())}
}

func (l *Local) Name() string {
	return "Local catalogues"
}

func (l *Local) ID() string {
	return "local"
}

// Dir returns the directory the source reads from.
func (l *Local) Dir() string {
	return l.dir
}

// List loads every catalogue in the directory. Unreadable documents are logged and skipped.
func (l *Local) List() ([]*Catalogue, error) {
	entries, err := filesystem.API().ReadDir(l.dir)
	if err != nil {
		return nil, err
	}

	files := lo.Filter(entries, func(e os.FileInfo, _ int) bool {
		return !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), Extension)
	})

	catalogues := make([]*Catalogue, 0, len(files))
	for _, f := range files {
		c, err := Open(filepath.Join(l.dir, f.Name()))
		if err != nil {
			log.Warnf("skipping catalogue %s: %v", f.Name(), err)
			continue
		}
		catalogues = append(catalogues, c)
	}

	return catalogues, nil
}

// Catalogue loads <dir>/<id>.json.
func (l *Local) Catalogue(id string) (*Catalogue, error) {
	if id == "" || id == "." || id == ".." || filepath.Base(id) != id {
		return nil, fmt.Errorf("invalid catalogue id %q", id)
	}

	path := filepath.Join(l.dir, id+Extension)
	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("catalogue %q not found in %s", id, l.dir)
	}

	return Open(path)
}
