package scoring

import (
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// Task una tarea de gamificación: rellenar un campo concreto del perfil.
type Task struct {
	Field     string
	Label     string
	Points    int
	Completed bool
}

// TaskList tareas en orden fijo con los puntos conseguidos.
// Es información de presentación; no interviene en ningún score.
type TaskList struct {
	Tasks        []Task
	EarnedPoints int
	TotalPoints  int
}

type taskDef[T any] struct {
	Field  string
	Label  string
	Points int
	Done   func(v *T) bool
}

// Completed se evalúa por "verdad": false, 0, "" y listas vacías no cuentan.
var userTasks = []taskDef[entity.UserProfile]{
	{"nationality", "Indica tu nacionalidad", 10, func(p *entity.UserProfile) bool { return p.Nationality != "" }},
	{"gender", "Indica tu género", 5, func(p *entity.UserProfile) bool { return p.Gender != "" }},
	{"birth_date", "Añade tu fecha de nacimiento", 5, func(p *entity.UserProfile) bool { return p.BirthDate != nil && !p.BirthDate.IsZero() }},
	{"preferred_language", "Elige tu idioma preferido", 5, func(p *entity.UserProfile) bool { return p.PreferredLanguage != "" }},
	{"spoken_languages", "Añade los idiomas que hablas", 10, func(p *entity.UserProfile) bool { return len(p.SpokenLanguages) > 0 }},
	{"current_country", "Indica tu país actual", 5, func(p *entity.UserProfile) bool { return p.CurrentCountry != "" }},
	{"current_city", "Indica tu ciudad actual", 5, func(p *entity.UserProfile) bool { return p.CurrentCity != "" }},
	{"home_university", "Añade tu universidad de origen", 15, func(p *entity.UserProfile) bool { return p.HomeUniversity != "" }},
	{"destination_university", "Añade tu universidad de destino", 15, func(p *entity.UserProfile) bool { return p.DestinationUniversity != "" }},
	{"study_field", "Indica tu área de estudio", 10, func(p *entity.UserProfile) bool { return p.StudyField != "" }},
	{"study_level", "Indica tu nivel de estudios", 5, func(p *entity.UserProfile) bool { return p.StudyLevel != "" }},
	{"study_start_date", "Añade la fecha de inicio de estudios", 5, func(p *entity.UserProfile) bool { return p.StudyStartDate != nil && !p.StudyStartDate.IsZero() }},
	{"study_end_date", "Añade la fecha de fin de estudios", 5, func(p *entity.UserProfile) bool { return p.StudyEndDate != nil && !p.StudyEndDate.IsZero() }},
	{"housing_type", "Indica tu tipo de alojamiento", 10, func(p *entity.UserProfile) bool { return p.HousingType != "" }},
	{"monthly_rent", "Indica tu renta mensual", 10, func(p *entity.UserProfile) bool { return p.MonthlyRent != nil && !p.MonthlyRent.IsZero() }},
	{"is_renting", "Confirma si estás alquilando", 5, func(p *entity.UserProfile) bool { return p.IsRenting != nil && *p.IsRenting }},
	{"has_lived_abroad", "Cuéntanos si has vivido en el extranjero", 5, func(p *entity.UserProfile) bool { return p.HasLivedAbroad != nil && *p.HasLivedAbroad }},
}

var companyTasks = []taskDef[entity.Company]{
	{"tax_id", "Añade el NIF de la empresa", 20, func(c *entity.Company) bool { return c.TaxID != "" }},
	{"website", "Añade el sitio web", 10, func(c *entity.Company) bool { return c.Website != "" }},
	{"phone", "Añade un teléfono de contacto", 10, func(c *entity.Company) bool { return c.Phone != "" }},
	{"address", "Añade la dirección", 10, func(c *entity.Company) bool { return c.Address != "" }},
	{"city", "Indica la ciudad", 5, func(c *entity.Company) bool { return c.City != "" }},
	{"country", "Indica el país", 5, func(c *entity.Company) bool { return c.Country != "" }},
	{"housing_units", "Indica el número de unidades", 10, func(c *entity.Company) bool { return c.HousingUnits != nil && *c.HousingUnits != 0 }},
	{"capacity", "Indica la capacidad total", 10, func(c *entity.Company) bool { return c.Capacity != nil && *c.Capacity != 0 }},
	{"price_range", "Indica el rango de precios", 10, func(c *entity.Company) bool { return c.PriceRange != "" }},
	{"amenities", "Lista las comodidades", 10, func(c *entity.Company) bool { return len(c.Amenities) > 0 }},
}

// UserTasks lista de tareas del estudiante.
func UserTasks(p *entity.UserProfile) TaskList {
	if p == nil {
		p = &entity.UserProfile{}
	}
	return buildTasks(userTasks, p)
}

// CompanyTasks lista de tareas de la empresa.
func CompanyTasks(c *entity.Company) TaskList {
	if c == nil {
		c = &entity.Company{}
	}
	return buildTasks(companyTasks, c)
}

func buildTasks[T any](defs []taskDef[T], v *T) TaskList {
	out := TaskList{Tasks: make([]Task, 0, len(defs))}
	for _, d := range defs {
		done := d.Done(v)
		out.Tasks = append(out.Tasks, Task{Field: d.Field, Label: d.Label, Points: d.Points, Completed: done})
		out.TotalPoints += d.Points
		if done {
			out.EarnedPoints += d.Points
		}
	}
	return out
}
