// Package scoring calcula las puntuaciones compuestas de la plataforma: completitud de perfil,
// trust score de usuarios y empresas, calidad de reseñas y la lista de tareas de gamificación.
//
// Todas las funciones son totales: un dato ausente toma el valor por defecto declarado en este
// archivo y el resultado siempre queda en 0..100. No hay camino de error.
package scoring

// Pesos del trust score de usuario (suman 1.0).
const (
	UserWeightProfileCompletion = 0.30
	UserWeightReviewConsistency = 0.25
	UserWeightEngagement        = 0.20
	UserWeightHelpfulVotes      = 0.15
	UserWeightAccountAge        = 0.10
)

// Pesos del trust score de empresa (suman 1.0).
const (
	CompanyWeightVerification  = 0.25
	CompanyWeightDataComplete  = 0.20
	CompanyWeightResponseRate  = 0.20
	CompanyWeightAverageRating = 0.15
	CompanyWeightResponseTime  = 0.10
	CompanyWeightReviewCount   = 0.05
	CompanyWeightVerifiedReps  = 0.03
	CompanyWeightAccountAge    = 0.02
)

// Pesos de la calidad de reseña (suman 1.0).
const (
	ReviewWeightLength       = 0.20
	ReviewWeightPhotos       = 0.15
	ReviewWeightCategoryTags = 0.15
	ReviewWeightVerifiedStay = 0.25
	ReviewWeightDetailedInfo = 0.15
	ReviewWeightSentiment    = 0.10
)

// Escalas de saturación.
const (
	AccountAgeDaysPerPoint   = 3.65  // 365 días = 100
	ResponseTimeCeilingHours = 168.0 // una semana = 0
	ReviewCountForFullScore  = 50.0
	VerifiedRepsForFullScore = 5.0
	ReviewLengthForFullScore = 300.0
	MaxRating                = 5.0
)

// UserTrustDefaults valores usados cuando el llamador no aporta un factor del usuario.
type UserTrustDefaults struct {
	ProfileCompletion float64
	ReviewConsistency float64 // marcador fijo: no existe derivación propia
	HelpfulRatio      float64
	AccountAgeDays    float64
	ReviewCount       int
}

// CompanyTrustDefaults valores usados cuando el llamador no aporta un factor de la empresa.
type CompanyTrustDefaults struct {
	VerificationStatus string
	DataCompleteness   float64
	ResponseRate       float64
	AverageRating      float64
	ResponseTimeScore  float64 // puntuación neutra si no hay tiempos de respuesta
	ReviewCount        int
	VerifiedReps       int
	AccountAgeDays     float64
}

// ReviewQualityDefaults valores usados cuando la reseña no trae análisis de sentimiento.
type ReviewQualityDefaults struct {
	SentimentConsistency float64 // 0..1
}

// Config agrupa todos los valores por defecto del calculador.
type Config struct {
	User    UserTrustDefaults
	Company CompanyTrustDefaults
	Review  ReviewQualityDefaults
}

// DefaultUserTrustDefaults política por defecto para usuarios.
func DefaultUserTrustDefaults() UserTrustDefaults {
	return UserTrustDefaults{
		ProfileCompletion: 0,
		ReviewConsistency: 75,
		HelpfulRatio:      0,
		AccountAgeDays:    0,
		ReviewCount:       0,
	}
}

// DefaultCompanyTrustDefaults política por defecto para empresas.
func DefaultCompanyTrustDefaults() CompanyTrustDefaults {
	return CompanyTrustDefaults{
		VerificationStatus: "pending",
		DataCompleteness:   0,
		ResponseRate:       0,
		AverageRating:      0,
		ResponseTimeScore:  50,
		ReviewCount:        0,
		VerifiedReps:       0,
		AccountAgeDays:     0,
	}
}

// DefaultConfig devuelve la política por defecto completa.
func DefaultConfig() Config {
	return Config{
		User:    DefaultUserTrustDefaults(),
		Company: DefaultCompanyTrustDefaults(),
		Review:  ReviewQualityDefaults{SentimentConsistency: 0.5},
	}
}

// Calculator aplica las fórmulas con una política de valores por defecto fija.
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator { return &Calculator{cfg: cfg} }
func NewDefault() *Calculator              { return NewCalculator(DefaultConfig()) }
