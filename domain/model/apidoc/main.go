package apidoc

// ClassDoc は外部のドキュメントパーサーが出力したクラス単位のドキュメントを表します。
// Is〜やDirective〜のフィールドはcategorizeサービスが付与する派生情報です。
type ClassDoc struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	EntryPoint  string      `json:"entryPoint,omitempty"`
	Decorators  []Decorator `json:"decorators,omitempty"`
	Tags        []Tag       `json:"tags,omitempty"`
	Members     []MemberDoc `json:"members,omitempty"`

	IsDirective        bool     `json:"isDirective"`
	IsService          bool     `json:"isService"`
	IsNgModule         bool     `json:"isNgModule"`
	IsDeprecated       bool     `json:"isDeprecated"`
	DirectiveSelectors []string `json:"directiveSelectors,omitempty"`
	DirectiveExportAs  string   `json:"directiveExportAs,omitempty"`
}

// Decorator はクラスに付与されたデコレータのメタデータです。
// Arguments はデコレータ引数のプロパティ名と文字列値のマップです。
type Decorator struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments,omitempty"`
}

type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type MemberDoc struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
	Tags        []Tag  `json:"tags,omitempty"`

	IsMethod     bool `json:"isMethod"`
	IsProperty   bool `json:"isProperty"`
	IsDeprecated bool `json:"isDeprecated"`
}

const (
	MemberKindMethod   = "method"
	MemberKindProperty = "property"
)
