package stats

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gescon/internal/feature/contract"
)

// Source exécute les requêtes d'agrégation en lecture seule. Le filtre
// par année est un intervalle sur date_fin (portable postgres/mysql) ;
// year == 0 signifie toutes années confondues.
type Source struct{ db *gorm.DB }

func NewSource(db *gorm.DB) *Source { return &Source{db: db} }

func yearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

func (s *Source) scoped(ctx context.Context, year int) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&contract.ContractModel{})
	if year > 0 {
		start, end := yearRange(year)
		q = q.Where("date_fin >= ? AND date_fin < ?", start, end)
	}
	return q
}

// FinishDates renvoie les date_fin de l'année ; la ventilation par mois
// se fait en Go (MonthBuckets), pas en SQL dialectal.
func (s *Source) FinishDates(ctx context.Context, year int) ([]time.Time, error) {
	var dates []time.Time
	err := s.scoped(ctx, year).Pluck("date_fin", &dates).Error
	return dates, err
}

type groupedRow struct {
	Label *string
	N     int64
}

func toBuckets(rows []groupedRow) []Bucket {
	out := make([]Bucket, 0, len(rows))
	for _, r := range rows {
		b := Bucket{Count: r.N}
		if r.Label != nil {
			b.Label = *r.Label
		}
		out = append(out, b)
	}
	return out
}

func (s *Source) countBy(ctx context.Context, column string, year int) ([]Bucket, error) {
	var rows []groupedRow
	err := s.scoped(ctx, year).
		Select(column + " AS label, COUNT(*) AS n").
		Group(column).
		Order(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toBuckets(rows), nil
}

func (s *Source) CountByType(ctx context.Context, year int) ([]Bucket, error) {
	return s.countBy(ctx, "type", year)
}

func (s *Source) CountByModalite(ctx context.Context, year int) ([]Bucket, error) {
	return s.countBy(ctx, "modalite_paiement", year)
}

func (s *Source) CountByFournisseur(ctx context.Context, year int) ([]Bucket, error) {
	return s.countBy(ctx, "fournisseur_nom", year)
}

// CountByEtat ventile les contrats d'un fournisseur par etat_contrat ;
// le seau NULL ressort avec Label "".
func (s *Source) CountByEtat(ctx context.Context, fournisseurNom string) ([]Bucket, error) {
	var rows []groupedRow
	err := s.db.WithContext(ctx).Model(&contract.ContractModel{}).
		Select("etat_contrat AS label, COUNT(*) AS n").
		Where("fournisseur_nom = ?", fournisseurNom).
		Group("etat_contrat").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toBuckets(rows), nil
}
