package entryPointGraph

// Graph は1つのパッケージのエントリポイント間の依存関係を表します。
// ノードは発見順に保持され、構築後は読み取り専用です。
type Graph struct {
	nodes  []*node
	byName map[string]*node
}

type node struct {
	name   string
	deps   []*node
	depSet map[string]struct{}
}

// NewGraph は名前ごとにノードを1つずつ持つグラフを作成します。namesの順序が発見順として保持されます。
func NewGraph(names []string) *Graph {
	g := &Graph{
		byName: make(map[string]*node, len(names)),
	}
	for _, name := range names {
		if _, ok := g.byName[name]; ok {
			continue
		}
		n := &node{
			name:   name,
			depSet: make(map[string]struct{}),
		}
		g.nodes = append(g.nodes, n)
		g.byName[n.name] = n
	}
	return g
}

// AddDependency はfromがtoに依存することを記録します。
// 未知の名前や自己参照は黙って無視されます。同じ依存関係を複数回追加しても辺は1本にまとまります。
func (g *Graph) AddDependency(from string, to string) {
	if from == to {
		return
	}

	fromNode, ok := g.byName[from]
	if !ok {
		return
	}
	toNode, ok := g.byName[to]
	if !ok {
		return
	}

	if _, ok := fromNode.depSet[to]; ok {
		return
	}
	fromNode.depSet[to] = struct{}{}
	fromNode.deps = append(fromNode.deps, toNode)
}

// Linearize はビルド順を返します。
// 各ノードを発見順に深さ優先で辿り、依存先を先に出力してから自身を出力します。
// 訪問済みフラグはこの呼び出しの中だけで保持されるため、複数回呼んでも同じ結果になります。
// 循環がある場合もエラーにはならず、訪問済みチェックによって打ち切られます（循環を構成する辺の
// 順序制約は保証されません）。
func (g *Graph) Linearize() []string {
	visited := make(map[string]bool, len(g.nodes))
	order := make([]string, 0, len(g.nodes))

	var visit func(n *node)
	visit = func(n *node) {
		if visited[n.name] {
			return
		}
		visited[n.name] = true

		for _, dep := range n.deps {
			visit(dep)
		}

		order = append(order, n.name)
	}

	for _, n := range g.nodes {
		visit(n)
	}

	return order
}

// Cycles はグラフに含まれる循環を検出して返します。
// 各循環はそれを構成するエントリポイント名の列です。循環がない場合はnilを返します。
func (g *Graph) Cycles() [][]string {
	const (
		white = iota
		grey
		black
	)

	color := make(map[string]int, len(g.nodes))
	var path []*node
	var cycles [][]string

	var visit func(n *node)
	visit = func(n *node) {
		color[n.name] = grey
		path = append(path, n)

		for _, dep := range n.deps {
			switch color[dep.name] {
			case white:
				visit(dep)
			case grey:
				// path上のdep以降が循環を構成する
				var cycle []string
				for i := len(path) - 1; i >= 0; i-- {
					cycle = append([]string{path[i].name}, cycle...)
					if path[i] == dep {
						break
					}
				}
				cycles = append(cycles, cycle)
			}
		}

		path = path[:len(path)-1]
		color[n.name] = black
	}

	for _, n := range g.nodes {
		if color[n.name] == white {
			visit(n)
		}
	}

	return cycles
}
