package grep

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

// Finder はgrepコマンドを使った検索バックエンドです。
type Finder struct {
	extensions []string
}

func NewFinder(extensions []string) *Finder {
	return &Finder{
		extensions: extensions,
	}
}

func (f *Finder) FindImportLines(dir string, packageName string) ([]string, error) {
	args := []string{"-r", "-h", "-E"}
	for _, ext := range f.extensions {
		args = append(args, "--include=*"+ext)
	}
	pattern := fmt.Sprintf(`from ['"]%s/`, regexp.QuoteMeta(packageName))
	args = append(args, pattern, dir)

	output, err := exec.Command("grep", args...).Output()
	if err != nil {
		// grepはマッチなしの場合に終了コード1を返すが、これはエラーではない
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 && len(output) == 0 {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "failed to run grep in: %s", dir)
	}

	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
