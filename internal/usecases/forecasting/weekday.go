package forecasting

import "time"

// weekdayNames guarda os nomes dos dias por idioma, começando na segunda-feira
var weekdayNames = map[string][7]string{
	"en": {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	"pt": {"Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira", "Sexta-feira", "Sábado", "Domingo"},
	"tr": {"Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi", "Pazar"},
}

const defaultLocale = "en"

// ISOWeekday converte o dia da semana do Go (domingo = 0) para o padrão ISO (segunda = 1, domingo = 7)
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// WeekdayName retorna o nome do dia ISO no idioma pedido, usando inglês quando o idioma não é conhecido
func WeekdayName(isoWeekday int, locale string) string {
	names, ok := weekdayNames[locale]
	if !ok {
		names = weekdayNames[defaultLocale]
	}
	if isoWeekday < 1 || isoWeekday > 7 {
		return ""
	}
	return names[isoWeekday-1]
}

// SupportedLocale informa se existe tradução para o idioma
func SupportedLocale(locale string) bool {
	_, ok := weekdayNames[locale]
	return ok
}
