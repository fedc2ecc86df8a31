package pricing

import "deck/internal/domain/model"

// 出品者ごとの明細
type SellerGroup struct {
	SellerID string
	Lines    []Line
}

// 出品者ごとのグループ。最初に出てきた順を保つ。
type SellerGroups struct {
	groups []SellerGroup
	index  map[string]int
}

func (g SellerGroups) Len() int {
	return len(g.groups)
}

// 順番どおりのグループ一覧（コピー）
func (g SellerGroups) All() []SellerGroup {
	out := make([]SellerGroup, len(g.groups))
	copy(out, g.groups)
	return out
}

func (g SellerGroups) SellerIDs() []string {
	ids := make([]string, 0, len(g.groups))
	for _, sg := range g.groups {
		ids = append(ids, sg.SellerID)
	}
	return ids
}

func (g SellerGroups) Get(sellerID string) ([]Line, bool) {
	i, ok := g.index[sellerID]
	if !ok {
		return nil, false
	}
	return g.groups[i].Lines, true
}

func (g *SellerGroups) add(line Line) {
	if g.index == nil {
		g.index = map[string]int{}
	}
	i, ok := g.index[line.SellerID]
	if !ok {
		i = len(g.groups)
		g.index[line.SellerID] = i
		g.groups = append(g.groups, SellerGroup{SellerID: line.SellerID})
	}
	g.groups[i].Lines = append(g.groups[i].Lines, line)
}

// カタログに無い商品の明細は落とす。
func GroupBySeller(items []model.CartItem, catalog Catalog) SellerGroups {
	var groups SellerGroups
	for _, it := range items {
		line, ok := ResolveLineItem(it, catalog)
		if !ok {
			continue
		}
		groups.add(line)
	}
	return groups
}
