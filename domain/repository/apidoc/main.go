//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package apidoc

import (
	modelApidoc "github.com/t-aoki/kumitate/domain/model/apidoc"
)

type Repository interface {
	Read(path string) ([]modelApidoc.ClassDoc, error)
	Write(path string, docs []modelApidoc.ClassDoc) error
}
