//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package buildOrder

// BuildOrder はパッケージのエントリポイントをビルドすべき順に並べたものです。
type BuildOrder struct {
	Package string   `json:"package"`
	Order   []string `json:"order"`
}

type Repository interface {
	Read(path string) (*BuildOrder, error)
	Write(path string, order *BuildOrder) error
}
