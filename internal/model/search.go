// internal/model/search.go
package model

// SearchResponse は横断検索の結果。種別ごとに上限件数まで返す。
type SearchResponse struct {
	Topics    []*Topic    `json:"topics"`
	Articles  []*Article  `json:"articles"`
	Questions []*Question `json:"questions"`
}
