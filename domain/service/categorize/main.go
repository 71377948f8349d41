package categorize

import (
	"strings"

	"github.com/t-aoki/kumitate/domain/model/apidoc"
)

type CategorizeService struct {
}

func NewCategorizeService() *CategorizeService {
	return &CategorizeService{}
}

// Categorize はパース済みのクラスドキュメントに描画用の派生情報を付与します。
// 入力は変更せず、付与済みのコピーを返します。
func (s *CategorizeService) Categorize(docs []apidoc.ClassDoc) []apidoc.ClassDoc {
	result := make([]apidoc.ClassDoc, len(docs))
	for i, doc := range docs {
		result[i] = s.categorizeClass(doc)
	}
	return result
}

func (s *CategorizeService) categorizeClass(doc apidoc.ClassDoc) apidoc.ClassDoc {
	for _, decorator := range doc.Decorators {
		switch decorator.Name {
		case "Directive", "Component":
			doc.IsDirective = true
			doc.DirectiveSelectors = selectorsOf(decorator)
			doc.DirectiveExportAs = decorator.Arguments["exportAs"]
		case "Injectable":
			doc.IsService = true
		case "NgModule":
			doc.IsNgModule = true
		}
	}

	doc.IsDeprecated = hasDeprecatedTag(doc.Tags)

	members := make([]apidoc.MemberDoc, len(doc.Members))
	for i, member := range doc.Members {
		member.IsMethod = member.Kind == apidoc.MemberKindMethod
		member.IsProperty = member.Kind == apidoc.MemberKindProperty
		member.IsDeprecated = hasDeprecatedTag(member.Tags)
		members[i] = member
	}
	doc.Members = members

	return doc
}

// selectorsOf はselector引数をカンマで分割して返します。
// 非推奨マーカーを含むセレクタはドキュメントに出さないため除外します。
func selectorsOf(decorator apidoc.Decorator) []string {
	selector, ok := decorator.Arguments["selector"]
	if !ok {
		return nil
	}

	var selectors []string
	for _, s := range strings.Split(selector, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if strings.Contains(s, "deprecated") {
			continue
		}
		selectors = append(selectors, s)
	}
	return selectors
}

func hasDeprecatedTag(tags []apidoc.Tag) bool {
	for _, tag := range tags {
		if tag.Name == "deprecated" {
			return true
		}
	}
	return false
}
