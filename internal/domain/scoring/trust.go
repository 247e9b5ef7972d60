package scoring

import (
	"math"

	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// Factor un sub-factor ya normalizado a 0..100 y su peso en el total.
type Factor struct {
	Name   string
	Weight float64
	Value  float64
}

// Breakdown resultado de un score compuesto con el detalle de cada factor.
type Breakdown struct {
	Score   int
	Factors []Factor
}

// UserTrustInputs entradas dispersas del trust score de usuario. nil = usar el valor por defecto.
// Si ProfileCompletion es nil y Profile no, la completitud se calcula a partir del perfil.
type UserTrustInputs struct {
	Profile           *entity.UserProfile
	ProfileCompletion *float64
	ReviewConsistency *float64
	EngagementLevel   *float64
	HelpfulRatio      *float64 // votos útiles por reseña, sin acotar
	AccountAgeDays    *float64
	ReviewCount       *int
}

// CompanyTrustInputs entradas dispersas del trust score de empresa. nil = usar el valor por defecto.
// Si DataCompleteness es nil y Company no, la completitud se calcula a partir de la empresa.
type CompanyTrustInputs struct {
	Company                 *entity.Company
	VerificationStatus      *string
	DataCompleteness        *float64
	ResponseRate            *float64 // 0..1
	AverageRating           *float64 // 0..5
	AvgResponseTimeHours    *float64
	ReviewCount             *int
	VerifiedRepresentatives *int
	AccountAgeDays          *float64
}

// UserTrust calcula el trust score del usuario (0..100).
func (c *Calculator) UserTrust(in UserTrustInputs) Breakdown {
	d := c.cfg.User

	completion := d.ProfileCompletion
	switch {
	case in.ProfileCompletion != nil:
		completion = *in.ProfileCompletion
	case in.Profile != nil:
		completion = float64(UserProfileCompletion(in.Profile))
	}

	ratio := orFloat(in.HelpfulRatio, d.HelpfulRatio)
	reviews := orInt(in.ReviewCount, d.ReviewCount)

	engagement := math.Min(100, float64(reviews)*10+ratio*50)
	if in.EngagementLevel != nil {
		engagement = *in.EngagementLevel
	}

	return weighted(
		Factor{"profile_completion", UserWeightProfileCompletion, completion},
		Factor{"review_consistency", UserWeightReviewConsistency, orFloat(in.ReviewConsistency, d.ReviewConsistency)},
		Factor{"engagement_level", UserWeightEngagement, engagement},
		Factor{"helpful_votes_ratio", UserWeightHelpfulVotes, math.Min(100, ratio*100)},
		Factor{"account_age", UserWeightAccountAge, AccountAgeScore(orFloat(in.AccountAgeDays, d.AccountAgeDays))},
	)
}

// CompanyTrust calcula el trust score de la empresa (0..100).
func (c *Calculator) CompanyTrust(in CompanyTrustInputs) Breakdown {
	d := c.cfg.Company

	status := d.VerificationStatus
	if in.VerificationStatus != nil {
		status = *in.VerificationStatus
	}

	completeness := d.DataCompleteness
	switch {
	case in.DataCompleteness != nil:
		completeness = *in.DataCompleteness
	case in.Company != nil:
		completeness = float64(CompanyDataCompleteness(in.Company))
	}

	responseTime := d.ResponseTimeScore
	if in.AvgResponseTimeHours != nil {
		responseTime = math.Max(0, 100-*in.AvgResponseTimeHours/ResponseTimeCeilingHours*100)
	}

	reviews := float64(orInt(in.ReviewCount, d.ReviewCount))
	reps := float64(orInt(in.VerifiedRepresentatives, d.VerifiedReps))

	return weighted(
		Factor{"verification_status", CompanyWeightVerification, VerificationScore(status)},
		Factor{"data_completeness", CompanyWeightDataComplete, completeness},
		Factor{"response_rate", CompanyWeightResponseRate, math.Min(100, orFloat(in.ResponseRate, d.ResponseRate)*100)},
		Factor{"average_rating", CompanyWeightAverageRating, orFloat(in.AverageRating, d.AverageRating) / MaxRating * 100},
		Factor{"response_time", CompanyWeightResponseTime, responseTime},
		Factor{"review_count", CompanyWeightReviewCount, math.Min(100, reviews/ReviewCountForFullScore*100)},
		Factor{"verified_representatives", CompanyWeightVerifiedReps, math.Min(100, reps/VerifiedRepsForFullScore*100)},
		Factor{"account_age", CompanyWeightAccountAge, AccountAgeScore(orFloat(in.AccountAgeDays, d.AccountAgeDays))},
	)
}

// VerificationScore verified → 100, pending → 50, rejected → 0. Un estado desconocido cuenta como pending.
func VerificationScore(status string) float64 {
	switch status {
	case entity.VerificationVerified:
		return 100
	case entity.VerificationRejected:
		return 0
	default:
		return 50
	}
}

// AccountAgeScore satura en 100 a partir de ~365 días.
func AccountAgeScore(days float64) float64 {
	return math.Min(100, days/AccountAgeDaysPerPoint)
}

// weighted acota cada factor a 0..100 y redondea la suma ponderada.
func weighted(factors ...Factor) Breakdown {
	var sum float64
	for i := range factors {
		factors[i].Value = clamp(factors[i].Value)
		sum += factors[i].Value * factors[i].Weight
	}
	return Breakdown{Score: int(clamp(math.Round(sum))), Factors: factors}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func orFloat(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func orInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
