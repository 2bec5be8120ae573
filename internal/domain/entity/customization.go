package entity

import "slices"

// ARModelID names one of the fixed base shoe models.
type ARModelID string

const (
	ModelClassic    ARModelID = "classic"
	ModelRunner     ARModelID = "runner"
	ModelBasketball ARModelID = "basketball"
)

// BaseModel is a built-in customization model.
type BaseModel struct {
	ID        ARModelID `json:"id"`
	Name      string    `json:"name"`
	BasePrice float64   `json:"basePrice"`
	Days      int       `json:"days"` // Base production time.
}

var baseModels = []BaseModel{
	{ID: ModelClassic, Name: "Classic Sneaker", BasePrice: 2500, Days: 7},
	{ID: ModelRunner, Name: "Performance Runner", BasePrice: 3000, Days: 10},
	{ID: ModelBasketball, Name: "High-Top Basketball", BasePrice: 3500, Days: 12},
}

// BaseModels returns the fixed model catalog.
func BaseModels() []BaseModel {
	return slices.Clone(baseModels)
}

// FindBaseModel looks up a base model by id.
func FindBaseModel(id ARModelID) (BaseModel, bool) {
	for _, m := range baseModels {
		if m.ID == id {
			return m, true
		}
	}

	return BaseModel{}, false
}

// ComponentKind is a customizable part with stored options.
type ComponentKind string

const (
	ComponentLaces   ComponentKind = "laces"
	ComponentInsoles ComponentKind = "insoles"
)

// IsValid checks if the component kind is a known value.
func (k ComponentKind) IsValid() bool {
	return k == ComponentLaces || k == ComponentInsoles
}

// ARModelExtension is the stored part of a model: colors and component options.
type ARModelExtension struct {
	BodyColors map[string]BodyColor       `json:"bodyColors,omitempty"`
	Laces      map[string]ComponentOption `json:"laces,omitempty"`
	Insoles    map[string]ComponentOption `json:"insoles,omitempty"`
}

// Options returns the option map for a component kind.
func (e *ARModelExtension) Options(kind ComponentKind) map[string]ComponentOption {
	if kind == ComponentInsoles {
		return e.Insoles
	}

	return e.Laces
}

// ARModel is a base model merged with its stored extension.
type ARModel struct {
	BaseModel
	ARModelExtension
	Colors map[string]ColorCompleteness `json:"colorCompleteness"`
}

// BodyColor holds the assets for one body color.
type BodyColor struct {
	Images     ColorImages `json:"images"`
	DeepARFile string      `json:"deepARFile,omitempty"`
}

// ColorImages are the four product angles.
type ColorImages struct {
	Main  string `json:"main,omitempty"`
	Front string `json:"front,omitempty"`
	Side  string `json:"side,omitempty"`
	Back  string `json:"back,omitempty"`
}

// Asset field names used in completeness reports and upload forms.
const (
	AssetMain   = "main"
	AssetFront  = "front"
	AssetSide   = "side"
	AssetBack   = "back"
	AssetDeepAR = "deepARFile"
)

// ImageAssets lists the image fields in display order.
func ImageAssets() []string {
	return []string{AssetMain, AssetFront, AssetSide, AssetBack}
}

// ColorCompleteness reports whether all five assets of a color are present.
type ColorCompleteness struct {
	Complete bool     `json:"complete"`
	Missing  []string `json:"missing,omitempty"`
}

// Completeness checks that all four images and the DeepAR effect are set.
func (c BodyColor) Completeness() ColorCompleteness {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{AssetMain, c.Images.Main},
		{AssetFront, c.Images.Front},
		{AssetSide, c.Images.Side},
		{AssetBack, c.Images.Back},
		{AssetDeepAR, c.DeepARFile},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}

	return ColorCompleteness{Complete: len(missing) == 0, Missing: missing}
}

// ComponentOption is one purchasable option for a component.
type ComponentOption struct {
	Price  float64  `json:"price"`
	Days   int      `json:"days,omitempty"`
	Image  string   `json:"image,omitempty"`
	Colors []string `json:"colors,omitempty"`
}

// ComponentSelection is a chosen option and the price charged for it.
type ComponentSelection struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

// CustomSelections is the configuration of a customized order.
type CustomSelections struct {
	Model     ARModelID           `json:"model"`
	BodyColor string              `json:"bodyColor,omitempty"`
	Size      string              `json:"size,omitempty"`
	BasePrice float64             `json:"basePrice"`
	Laces     *ComponentSelection `json:"laces,omitempty"`
	Insole    *ComponentSelection `json:"insole,omitempty"`
	Sole      *ComponentSelection `json:"sole,omitempty"`
	Upper     *ComponentSelection `json:"upper,omitempty"`
	Midsole   *ComponentSelection `json:"midsole,omitempty"`
	Outsole   *ComponentSelection `json:"outsole,omitempty"`
}

// ComponentPrices returns the prices of the selected components.
func (s *CustomSelections) ComponentPrices() []float64 {
	var prices []float64
	for _, c := range []*ComponentSelection{s.Laces, s.Insole, s.Sole, s.Upper, s.Midsole, s.Outsole} {
		if c != nil {
			prices = append(prices, c.Price)
		}
	}

	return prices
}
