package models

// PeriodMode - гранулярность данных о фокусах
type PeriodMode string

const (
	Period10Min  PeriodMode = "10min"
	PeriodMensal PeriodMode = "mensal"
	PeriodAnual  PeriodMode = "anual"
)

// DefaultPeriod - режим живой ленты, загружается при старте
const DefaultPeriod = Period10Min

// Valid сообщает, известен ли режим
func (p PeriodMode) Valid() bool {
	switch p {
	case Period10Min, PeriodMensal, PeriodAnual:
		return true
	}
	return false
}

// HasFileSelector сообщает, нужен ли для режима выбор файла
func (p PeriodMode) HasFileSelector() bool {
	return p == PeriodMensal || p == PeriodAnual
}

// Selection - текущий выбор периода и файлов в селекторах
type Selection struct {
	Period       PeriodMode `json:"period"`
	MonthlyFile  string     `json:"monthly_file"`
	AnnualFile   string     `json:"annual_file"`
	MonthlyFiles []string   `json:"monthly_files"`
	AnnualFiles  []string   `json:"annual_files"`
}

// FileFor возвращает имя файла для режима, пустая строка для 10min
func (s Selection) FileFor(mode PeriodMode) string {
	switch mode {
	case PeriodMensal:
		return s.MonthlyFile
	case PeriodAnual:
		return s.AnnualFile
	}
	return ""
}

// OptionsFor возвращает список файлов селектора для режима
func (s Selection) OptionsFor(mode PeriodMode) []string {
	switch mode {
	case PeriodMensal:
		return s.MonthlyFiles
	case PeriodAnual:
		return s.AnnualFiles
	}
	return nil
}
