// Package stats sépare l'agrégation (comptages purs, testables sans
// rendu) de l'adaptateur de rendu go-chart qui n'en consomme que les
// résultats.
package stats

import "time"

// Bucket est un comptage étiqueté ; Label vaut "" pour le seau NULL
// de etat_contrat.
type Bucket struct {
	Label string
	Count int64
}

// MonthNames : libellés français des 12 mois, index 0 = Janvier.
var MonthNames = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// MonthBuckets compte les dates par mois calendaire (index 0 = Janvier).
func MonthBuckets(dates []time.Time) [12]int64 {
	var out [12]int64
	for _, d := range dates {
		out[int(d.Month())-1]++
	}
	return out
}

// Libellés de la ventilation par état d'un fournisseur ; le seau NULL
// est replié dans la troisième catégorie.
const (
	LabelCancelled     = "Résilé"
	LabelSuspended     = "Suspendu"
	LabelDoneOrOngoing = "Terminé/En Cours"
)

// CollapseStatus replie les comptages par etat_contrat en trois seaux
// fixes : résilé, suspendu, et NULL → Terminé/En Cours.
func CollapseStatus(rows []Bucket) []Bucket {
	var cancelled, suspended, rest int64
	for _, r := range rows {
		switch r.Label {
		case "résilé":
			cancelled += r.Count
		case "suspendu":
			suspended += r.Count
		default: // NULL
			rest += r.Count
		}
	}
	return []Bucket{
		{Label: LabelCancelled, Count: cancelled},
		{Label: LabelSuspended, Count: suspended},
		{Label: LabelDoneOrOngoing, Count: rest},
	}
}

// Total additionne les comptages.
func Total(rows []Bucket) int64 {
	var t int64
	for _, r := range rows {
		t += r.Count
	}
	return t
}
