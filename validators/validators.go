package validators

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"loja-virtual/models"
)

// ProductInput carries the raw form fields of the add/edit product forms.
type ProductInput struct {
	Name        string
	Price       string
	Description string
	CategoryID  string
}

// ProductFields is the parsed result of a product validation. On a price
// parse failure Price stays zero so the form can be redisplayed.
type ProductFields struct {
	Name        string
	Price       decimal.Decimal
	Description string
	CategoryID  *int
}

// Product checks every rule independently and returns all violations at
// once, never short-circuiting on the first failure.
func Product(in ProductInput, categories []models.Category) (ProductFields, []string) {
	fields := ProductFields{
		Name:        strings.TrimSpace(in.Name),
		Price:       decimal.Zero,
		Description: strings.TrimSpace(in.Description),
	}
	errs := []string{}

	if fields.Name == "" {
		errs = append(errs, "O nome do produto é obrigatório.")
	} else if n := len([]rune(fields.Name)); n < 3 || n > 100 {
		errs = append(errs, "O nome do produto deve ter entre 3 e 100 caracteres.")
	}

	price := strings.TrimSpace(in.Price)
	if price == "" {
		errs = append(errs, "O preço é obrigatório.")
	} else if parsed, err := decimal.NewFromString(price); err != nil {
		errs = append(errs, "O preço deve ser um número válido.")
	} else if parsed.IsNegative() {
		errs = append(errs, "O preço não pode ser negativo.")
	} else {
		fields.Price = parsed
	}

	if len([]rune(fields.Description)) > 500 {
		errs = append(errs, "A descrição deve ter no máximo 500 caracteres.")
	}

	if raw := strings.TrimSpace(in.CategoryID); raw != "" {
		id, err := strconv.Atoi(raw)
		found := false
		if err == nil {
			for _, cat := range categories {
				if cat.ID == id {
					found = true
					break
				}
			}
		}
		if found {
			fields.CategoryID = &id
		} else {
			errs = append(errs, "A categoria selecionada não existe.")
		}
	}

	return fields, errs
}

// CategoryInput carries the raw form fields of the category forms.
type CategoryInput struct {
	Name string
}

// Category returns the trimmed name plus all violations. Uniqueness is
// case-insensitive and skips the record being edited (selfID, zero when
// creating).
func Category(in CategoryInput, existing []models.Category, selfID int) (string, []string) {
	name := strings.TrimSpace(in.Name)
	errs := []string{}

	if name == "" {
		errs = append(errs, "O nome da categoria é obrigatório.")
	} else if n := len([]rune(name)); n < 2 || n > 50 {
		errs = append(errs, "O nome da categoria deve ter entre 2 e 50 caracteres.")
	}

	if name != "" {
		for _, cat := range existing {
			if cat.ID != selfID && strings.EqualFold(cat.Name, name) {
				errs = append(errs, "Já existe uma categoria com esse nome.")
				break
			}
		}
	}

	return name, errs
}
