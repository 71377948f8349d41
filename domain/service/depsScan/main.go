package depsScan

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/rotisserie/eris"
	"github.com/t-aoki/kumitate/domain/external/textsearch"
)

type DepsScanService struct {
	finder textsearch.Finder
}

func NewDepsScanService(finder textsearch.Finder) *DepsScanService {
	return &DepsScanService{
		finder: finder,
	}
}

// Scan は各エントリポイントのソースから同一パッケージ内の他エントリポイントへの依存を抽出します。
// 戻り値はエントリポイント名をキーとし、依存先名を出現順（重複なし）で持つマップです。
// 発見済みエントリポイント以外への参照と自己参照は黙って捨てられます。
func (s *DepsScanService) Scan(packageDir string, packageName string, entryPoints []string) (map[string][]string, error) {
	known := make(map[string]struct{}, len(entryPoints))
	for _, name := range entryPoints {
		known[name] = struct{}{}
	}

	// import文からエントリポイント名を取り出すパターン
	// 例: import {A11yModule} from '@myorg/cdk/a11y';
	pattern := regexp.MustCompile(fmt.Sprintf(`from ['"]%s/([^/'"]+)['"]`, regexp.QuoteMeta(packageName)))

	deps := make(map[string][]string, len(entryPoints))
	for _, entryPoint := range entryPoints {
		lines, err := s.finder.FindImportLines(filepath.Join(packageDir, entryPoint), packageName)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to search imports in entry point: %s", entryPoint)
		}

		seen := make(map[string]struct{})
		var names []string
		for _, line := range lines {
			for _, match := range pattern.FindAllStringSubmatch(line, -1) {
				name := match[1]
				if name == entryPoint {
					continue
				}
				if _, ok := known[name]; !ok {
					continue
				}
				if _, ok := seen[name]; ok {
					continue
				}
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
		deps[entryPoint] = names
	}

	return deps, nil
}
