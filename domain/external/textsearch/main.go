//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package textsearch

// Finder はディレクトリ配下のソースファイルから、指定パッケージへのimport文を含む行を検索します。
type Finder interface {
	// FindImportLines はdir配下を再帰的に検索し、packageNameへのimport参照を含む行を返します。
	// マッチする行が存在しない場合は空のスライスを返します（エラーではありません）。
	FindImportLines(dir string, packageName string) ([]string, error)
}

// FinderFactory は設定に応じた検索バックエンドを生成します。
type FinderFactory interface {
	// Make はbackend（auto | grep | scan）に対応するFinderを返します。
	// 未知のbackendが指定された場合はエラーを返します。
	Make(backend string, extensions []string) (Finder, error)
}
