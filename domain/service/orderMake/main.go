package orderMake

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/t-aoki/kumitate/domain/external/textsearch"
	"github.com/t-aoki/kumitate/domain/repository/buildOrder"
	"github.com/t-aoki/kumitate/domain/repository/config"
	"github.com/t-aoki/kumitate/domain/service/configFindService"
	"github.com/t-aoki/kumitate/domain/service/depsScan"
	"github.com/t-aoki/kumitate/domain/service/entryPointGraph"
	"github.com/t-aoki/kumitate/domain/service/entryPointScan"
	"github.com/t-aoki/kumitate/domain/system/ksuid"
	"github.com/t-aoki/kumitate/domain/system/timer"
)

type OrderMakeService struct {
	configFindService     *configFindService.ConfigFindService
	configRepository      config.Repository
	entryPointScanService *entryPointScan.EntryPointScanService
	finderFactory         textsearch.FinderFactory
	buildOrderRepository  buildOrder.Repository
	timer                 timer.ITimer
	ksuidGenerator        ksuid.IKsuid
}

func NewOrderMakeService(
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	entryPointScanService *entryPointScan.EntryPointScanService,
	finderFactory textsearch.FinderFactory,
	buildOrderRepository buildOrder.Repository,
	timer timer.ITimer,
	ksuidGenerator ksuid.IKsuid,
) *OrderMakeService {
	return &OrderMakeService{
		configFindService:     configFindService,
		configRepository:      configRepository,
		entryPointScanService: entryPointScanService,
		finderFactory:         finderFactory,
		buildOrderRepository:  buildOrderRepository,
		timer:                 timer,
		ksuidGenerator:        ksuidGenerator,
	}
}

// Make はpackageDirのエントリポイントを発見し、依存関係に従ったビルド順を計算して
// .kumitate/build-order/ 配下に保存します。計算した順序を返します。
func (s *OrderMakeService) Make(packageDir string, packageName string) ([]string, error) {
	// 設定ファイルの読み込み
	configPath, err := s.configFindService.FindConfig()
	if err != nil {
		return nil, eris.Wrap(err, "failed to find config file")
	}

	cfg, err := s.configRepository.Read(configPath)
	if err != nil {
		return nil, eris.Wrap(err, "failed to read config file")
	}

	rootDir := s.configFindService.GetProjectRoot(configPath)

	if packageName == "" {
		packageName = s.resolvePackageName(cfg, packageDir)
	}

	// エントリポイントの発見
	entryPoints, err := s.entryPointScanService.Scan(packageDir, cfg.GetMarkerFile())
	if err != nil {
		return nil, err
	}

	// 依存関係の抽出
	backend := os.Getenv("KUMITATE_SEARCH_BACKEND")
	if backend == "" {
		backend = cfg.Search.Backend
	}
	finder, err := s.finderFactory.Make(backend, cfg.GetSourceExtensions())
	if err != nil {
		return nil, err
	}

	deps, err := depsScan.NewDepsScanService(finder).Scan(packageDir, packageName, entryPoints)
	if err != nil {
		return nil, err
	}

	// グラフの構築と線形化
	graph := entryPointGraph.NewGraph(entryPoints)
	for _, entryPoint := range entryPoints {
		for _, dep := range deps[entryPoint] {
			graph.AddDependency(entryPoint, dep)
		}
	}

	for _, cycle := range graph.Cycles() {
		fmt.Fprintf(os.Stderr, "warning: dependency cycle detected: %s\n", formatCycle(cycle))
	}

	order := graph.Linearize()

	err = s.save(rootDir, packageName, packageDir, order)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// resolvePackageName はimport文に現れるパッケージ名を導出します。
// 例: import-scopeが "@myorg" でパッケージディレクトリが src/cdk の場合は "@myorg/cdk" になります。
func (s *OrderMakeService) resolvePackageName(cfg *config.Config, packageDir string) string {
	base := filepath.Base(filepath.Clean(packageDir))
	if cfg.ImportScope == "" {
		return base
	}
	return cfg.ImportScope + "/" + base
}

func (s *OrderMakeService) save(rootDir string, packageName string, packageDir string, order []string) error {
	result := &buildOrder.BuildOrder{
		Package: packageName,
		Order:   order,
	}

	outputPath := filepath.Join(rootDir, ".kumitate", "build-order", filepath.Base(filepath.Clean(packageDir))+".json")

	oldContent, err := os.ReadFile(outputPath)
	if err != nil && !os.IsNotExist(err) {
		return eris.Wrapf(err, "failed to read previous build order: %s", outputPath)
	}

	err = s.buildOrderRepository.Write(outputPath, result)
	if err != nil {
		return eris.Wrapf(err, "failed to write build order: %s", outputPath)
	}

	if len(oldContent) > 0 {
		newContent, err := os.ReadFile(outputPath)
		if err != nil {
			return eris.Wrapf(err, "failed to read build order: %s", outputPath)
		}
		if string(oldContent) != string(newContent) {
			s.printDiff(string(oldContent), string(newContent))
		}
	}

	historyDir, err := s.createHistoryDir(rootDir)
	if err != nil {
		return err
	}

	err = s.buildOrderRepository.Write(filepath.Join(historyDir, "build-order.json"), result)
	if err != nil {
		return eris.Wrap(err, "failed to save build order history")
	}

	return nil
}

func (s *OrderMakeService) printDiff(oldContent, newContent string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldContent, newContent, false)
	fmt.Println(dmp.DiffPrettyText(diffs))
}

func (s *OrderMakeService) createHistoryDir(rootDir string) (string, error) {
	historyBaseDir := filepath.Join(rootDir, ".kumitate", "history")
	err := os.MkdirAll(historyBaseDir, 0755)
	if err != nil {
		return "", eris.Wrap(err, "failed to create history base directory")
	}

	id := s.ksuidGenerator.New()
	historyDir := filepath.Join(historyBaseDir, id)
	err = os.Mkdir(historyDir, 0755)
	if err != nil {
		return "", eris.Wrap(err, "failed to create history directory")
	}

	timeFile := filepath.Join(historyDir, s.timer.Now().Format("2006-01-02T15:04:05"))
	file, err := os.Create(timeFile)
	if err != nil {
		return "", eris.Wrap(err, "failed to create time file")
	}
	defer file.Close()

	return historyDir, nil
}

func formatCycle(cycle []string) string {
	if len(cycle) == 0 {
		return ""
	}
	return strings.Join(append(append([]string{}, cycle...), cycle[0]), " -> ")
}
