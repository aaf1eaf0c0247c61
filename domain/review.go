package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type ReviewID string

const (
	MinReviewLength    = 5
	RecentReviewsCount = 5
)

// Review is a customer comment on a store. It stays hidden until approved.
type Review struct {
	ID            ReviewID  `json:"id"`
	StoreID       StoreID   `json:"tienda_id"`
	CustomerName  string    `json:"cliente_nombre"`
	CustomerPhone string    `json:"cliente_telefono,omitempty"`
	Comment       string    `json:"comentario"`
	Rating        *int      `json:"calificacion,omitempty"`
	Language      string    `json:"idioma,omitempty"`
	Censored      bool      `json:"censurado"`
	Approved      bool      `json:"aprobado"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReviewSummary describes the published reviews of a store.
// AverageRating is nil while no published review carries a rating.
type ReviewSummary struct {
	AverageRating *string `json:"promedio_calificacion"`
	Total         int     `json:"total_comentarios"`
	Rated         int     `json:"total_calificaciones"`
}

func SummarizeReviews(approved []Review) ReviewSummary {
	summary := ReviewSummary{Total: len(approved)}
	if average, rated := averageRating(approved); rated > 0 {
		s := average.StringFixed(1)
		summary.AverageRating = &s
		summary.Rated = rated
	}
	return summary
}

type RatingCount struct {
	Rating int `json:"calificacion"`
	Count  int `json:"cantidad"`
}

type ReviewStats struct {
	Distribution []RatingCount     `json:"distribucion"`
	Recent       []Review          `json:"recientes"`
	Summary      ReviewStatsDigest `json:"resumen"`
}

// ReviewStatsDigest covers every review of the store, pending ones included.
type ReviewStatsDigest struct {
	AverageRating string `json:"promedio_calificacion"`
	Total         int    `json:"total_comentarios"`
	Pending       int    `json:"pendientes_aprobacion"`
	FiveStars     int    `json:"cinco_estrellas"`
	FourPlusStars int    `json:"cuatro_mas_estrellas"`
	Satisfaction  string `json:"porcentaje_satisfaccion"`
}

// NewReviewStats builds the owner dashboard figures. The distribution and the
// recent list only look at published reviews; approved must be newest first.
func NewReviewStats(approved, pending []Review) ReviewStats {
	counts := map[int]int{}
	for _, r := range approved {
		if r.Rating != nil {
			counts[*r.Rating]++
		}
	}
	distribution := make([]RatingCount, 0, len(counts))
	for rating, count := range counts {
		distribution = append(distribution, RatingCount{Rating: rating, Count: count})
	}
	sort.Slice(distribution, func(i, j int) bool { return distribution[i].Rating > distribution[j].Rating })

	recent := approved
	if len(recent) > RecentReviewsCount {
		recent = recent[:RecentReviewsCount]
	}

	all := append(append([]Review{}, approved...), pending...)
	digest := ReviewStatsDigest{
		Total:        len(all),
		Pending:      len(pending),
		Satisfaction: decimal.Zero.StringFixed(1),
	}
	for _, r := range all {
		if r.Rating == nil {
			continue
		}
		if *r.Rating == 5 {
			digest.FiveStars++
		}
		if *r.Rating >= 4 {
			digest.FourPlusStars++
		}
	}
	average, _ := averageRating(all)
	digest.AverageRating = average.StringFixed(1)
	if digest.Total > 0 {
		digest.Satisfaction = decimal.NewFromInt(int64(digest.FourPlusStars)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(digest.Total))).
			StringFixed(1)
	}

	return ReviewStats{Distribution: distribution, Recent: recent, Summary: digest}
}

func averageRating(reviews []Review) (decimal.Decimal, int) {
	sum, rated := 0, 0
	for _, r := range reviews {
		if r.Rating != nil {
			sum += *r.Rating
			rated++
		}
	}
	if rated == 0 {
		return decimal.Zero, 0
	}
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(rated))), rated
}
