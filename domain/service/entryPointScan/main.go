package entryPointScan

import (
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/t-aoki/kumitate/domain/repository/file"
)

type EntryPointScanService struct {
	fileRepository file.Repository
}

func NewEntryPointScanService(fileRepository file.Repository) *EntryPointScanService {
	return &EntryPointScanService{
		fileRepository: fileRepository,
	}
}

// Scan はpackageDir直下のサブディレクトリのうち、markerFileを直接含むものをエントリポイントとして返します。
// markerFileを含まないディレクトリは単に除外されます。packageDirが存在しない場合はエラーを返します。
func (s *EntryPointScanService) Scan(packageDir string, markerFile string) ([]string, error) {
	dirs, err := s.fileRepository.ListDirs(packageDir)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to list package dir: %s", packageDir)
	}

	var entryPoints []string
	for _, dir := range dirs {
		if s.fileRepository.Exists(filepath.Join(packageDir, dir, markerFile)) {
			entryPoints = append(entryPoints, dir)
		}
	}

	return entryPoints, nil
}
