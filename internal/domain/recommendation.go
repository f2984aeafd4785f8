package domain

// RecommendationSource tells which strategy produced a recommendation list.
type RecommendationSource string

const (
	RecommendationSource_Similarity       RecommendationSource = "similarity"
	RecommendationSource_CategoryFallback RecommendationSource = "category_fallback"
	RecommendationSource_Empty            RecommendationSource = "empty"
)

// RecommendationOutcome is the result of a recommendation request.
// Items is empty only when Source is RecommendationSource_Empty.
type RecommendationOutcome struct {
	Source RecommendationSource
	Items  []ScoredRecord
}

// EmptyRecommendation returns an outcome with no items.
func EmptyRecommendation() RecommendationOutcome {
	return RecommendationOutcome{
		Source: RecommendationSource_Empty,
		Items:  []ScoredRecord{},
	}
}

// IDs returns the ids of the recommended records in order.
func (o RecommendationOutcome) IDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.Record.ID.String())
	}
	return ids
}
