package textsearch

import (
	"os/exec"

	"github.com/rotisserie/eris"
	domainTextsearch "github.com/t-aoki/kumitate/domain/external/textsearch"
	"github.com/t-aoki/kumitate/infrastructure/external/textsearch/grep"
	"github.com/t-aoki/kumitate/infrastructure/external/textsearch/scan"
)

type FinderFactory struct{}

func NewFinderFactory() domainTextsearch.FinderFactory {
	return &FinderFactory{}
}

func (f *FinderFactory) Make(backend string, extensions []string) (domainTextsearch.Finder, error) {
	switch backend {
	case "grep":
		return grep.NewFinder(extensions), nil
	case "scan":
		return scan.NewFinder(extensions), nil
	case "", "auto":
		if _, err := exec.LookPath("grep"); err == nil {
			return grep.NewFinder(extensions), nil
		}
		return scan.NewFinder(extensions), nil
	default:
		return nil, eris.Errorf("unsupported search backend: %s", backend)
	}
}
