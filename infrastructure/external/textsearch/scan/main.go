package scan

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/denormal/go-gitignore"
	"github.com/rotisserie/eris"
)

// Finder はファイル内容を直接走査する検索バックエンドです。grepが使えない環境向けのフォールバックです。
type Finder struct {
	extensions []string
}

func NewFinder(extensions []string) *Finder {
	return &Finder{
		extensions: extensions,
	}
}

func (f *Finder) FindImportLines(dir string, packageName string) ([]string, error) {
	// .kumitateignore があれば検索対象から除外する
	ignorePath := filepath.Join(dir, ".kumitateignore")
	ignore, err := gitignore.NewFromFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return nil, eris.Wrap(err, "failed to read .kumitateignore file")
	}

	needles := []string{
		"from '" + packageName + "/",
		`from "` + packageName + `/`,
	}

	var lines []string
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() && info.Name()[0] == '.' && path != dir {
			return filepath.SkipDir
		}

		if ignore != nil && path != dir {
			relPath, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			// Matchは絶対パス前提のため、相対パスで照合するRelativeを使う
			if match := ignore.Relative(relPath, info.IsDir()); match != nil && match.Ignore() {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if info.IsDir() || !f.isSourceFile(path) {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := scanner.Text()
			for _, needle := range needles {
				if strings.Contains(line, needle) {
					lines = append(lines, line)
					break
				}
			}
		}
		return scanner.Err()
	})
	if err != nil {
		return nil, eris.Wrapf(err, "failed to scan directory: %s", dir)
	}

	return lines, nil
}

func (f *Finder) isSourceFile(path string) bool {
	for _, ext := range f.extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
