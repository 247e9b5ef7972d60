package scoring

import "math"

// ReviewQualityInputs señales de calidad de una reseña.
type ReviewQualityInputs struct {
	ContentLength        int // caracteres, no bytes
	HasPhotos            bool
	HasCategoryTags      bool
	IsVerifiedStay       bool
	HasDetailedInfo      bool
	SentimentConsistency *float64 // 0..1
}

// ReviewQuality puntuación 0..100 de la calidad de una reseña.
// No alimenta el trust score; se guarda en la reseña para ordenar y moderar.
func (c *Calculator) ReviewQuality(in ReviewQualityInputs) Breakdown {
	sentiment := orFloat(in.SentimentConsistency, c.cfg.Review.SentimentConsistency)
	return weighted(
		Factor{"length", ReviewWeightLength, math.Min(100, float64(in.ContentLength)/ReviewLengthForFullScore*100)},
		Factor{"has_photos", ReviewWeightPhotos, binary(in.HasPhotos)},
		Factor{"has_category_tags", ReviewWeightCategoryTags, binary(in.HasCategoryTags)},
		Factor{"verified_stay", ReviewWeightVerifiedStay, binary(in.IsVerifiedStay)},
		Factor{"has_detailed_info", ReviewWeightDetailedInfo, binary(in.HasDetailedInfo)},
		Factor{"sentiment_consistency", ReviewWeightSentiment, sentiment * 100},
	)
}

func binary(b bool) float64 {
	if b {
		return 100
	}
	return 0
}
