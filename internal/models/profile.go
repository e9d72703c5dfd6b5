package models

// FieldWeight ключ поля веса — единственное поле, общее для обоих профилей.
// Используется аналитикой трендов.
const FieldWeight = "weight"

// FieldDef описывает одно поле измерений в профиле датасета
type FieldDef struct {
	Key   string // Key ключ поля в Entry.Fields
	Label string // Label человекочитаемое название
	Unit  string // Unit единица измерения ("kg", "cm")
}

// Profile описывает статически известный набор полей датасета.
// Gateway валидирует ключи полей против профиля вместо того чтобы
// принимать произвольные имена.
type Profile struct {
	Dataset DatasetKey
	Fields  []FieldDef
}

// HasField проверяет что ключ поля принадлежит профилю
func (p *Profile) HasField(key string) bool {
	for _, f := range p.Fields {
		if f.Key == key {
			return true
		}
	}
	return false
}

// FieldKeys возвращает ключи полей профиля в порядке объявления
func (p *Profile) FieldKeys() []string {
	keys := make([]string, 0, len(p.Fields))
	for _, f := range p.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

var (
	// ProfileMale профиль измерений для мужского датасета
	ProfileMale = Profile{
		Dataset: DatasetMale,
		Fields: []FieldDef{
			{Key: FieldWeight, Label: "Weight", Unit: "kg"},
			{Key: "chest", Label: "Chest", Unit: "cm"},
			{Key: "belly", Label: "Belly", Unit: "cm"},
			{Key: "biceps", Label: "Biceps", Unit: "cm"},
			{Key: "thigh", Label: "Thigh", Unit: "cm"},
			{Key: "calf", Label: "Calf", Unit: "cm"},
		},
	}

	// ProfileFemale профиль измерений для женского датасета
	ProfileFemale = Profile{
		Dataset: DatasetFemale,
		Fields: []FieldDef{
			{Key: FieldWeight, Label: "Weight", Unit: "kg"},
			{Key: "thigh_upper", Label: "Thigh (upper)", Unit: "cm"},
			{Key: "thigh_lower", Label: "Thigh (lower)", Unit: "cm"},
			{Key: "waist", Label: "Waist", Unit: "cm"},
			{Key: "bust", Label: "Bust", Unit: "cm"},
			{Key: "underbust", Label: "Underbust", Unit: "cm"},
			{Key: "biceps", Label: "Biceps", Unit: "cm"},
			{Key: "calf", Label: "Calf", Unit: "cm"},
			{Key: "glutes", Label: "Glutes", Unit: "cm"},
			{Key: "below_navel", Label: "3 cm below navel", Unit: "cm"},
		},
	}
)

// ProfileFor возвращает профиль для датасета.
// Для неизвестного ключа возвращает nil.
func ProfileFor(dataset DatasetKey) *Profile {
	switch dataset {
	case DatasetMale:
		return &ProfileMale
	case DatasetFemale:
		return &ProfileFemale
	default:
		return nil
	}
}
