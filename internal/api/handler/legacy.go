package handler

import (
	"net/http"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
)

// O painel de gestão antigo lê as respostas com chaves e rótulos em turco.
// Os tipos abaixo reproduzem esse contrato a partir das respostas atuais.

const legacyLocale = "tr"

var legacyMessages = map[string]string{
	apiErrors.ErrInsufficientHistory: "Yeterli veri yok (en az 3 gün gerekli)",
	apiErrors.ErrNoProducts:          "Ürün bulunamadı",
}

var legacyUrgency = map[domain.Urgency]string{
	domain.UrgencyDepleted:  "Tükendi",
	domain.UrgencyCritical:  "Kritik",
	domain.UrgencyWarning:   "Uyarı",
	domain.UrgencyAttention: "Dikkat",
	domain.UrgencyNormal:    "Normal",
}

type legacySalesForecast struct {
	Basari            bool    `json:"basari"`
	Tarih             string  `json:"tarih,omitempty"`
	GunAdi            string  `json:"gun_adi,omitempty"`
	TahminiSatis      int     `json:"tahmini_satis"`
	TahminiCiro       float64 `json:"tahmini_ciro"`
	OrtalamaSatis7gun int     `json:"ortalama_satis_7gun"`
	OrtalamaCiro7gun  float64 `json:"ortalama_ciro_7gun"`
	SatisDegisimYuzde float64 `json:"satis_degisim_yuzde"`
	CiroDegisimYuzde  float64 `json:"ciro_degisim_yuzde"`
	Mesaj             string  `json:"mesaj,omitempty"`
	Hata              string  `json:"hata,omitempty"`
}

type legacyStockEntry struct {
	UrunID               int64   `json:"urun_id"`
	UrunAdi              string  `json:"urun_adi"`
	Kategori             string  `json:"kategori"`
	MevcutStok           int     `json:"mevcut_stok"`
	GunlukSatisOrtalama  float64 `json:"gunluk_satis_ortalama"`
	TahminiKalanGun      *int    `json:"tahmini_kalan_gun"`
	TahminiTukenmeTarihi string  `json:"tahmini_tukenme_tarihi"`
	Aciliyet             string  `json:"aciliyet"`
	AciliyetRenk         string  `json:"aciliyet_renk"`
}

type legacyStockReport struct {
	Basari            bool               `json:"basari"`
	AnalizTarihi      string             `json:"analiz_tarihi,omitempty"`
	ToplamUrun        int                `json:"toplam_urun"`
	KritikUrunSayisi  int                `json:"kritik_urun_sayisi"`
	TukenenUrunSayisi int                `json:"tukenen_urun_sayisi"`
	KritikUrunler     []legacyStockEntry `json:"kritik_urunler"`
	TumUrunler        []legacyStockEntry `json:"tum_urunler"`
	Mesaj             string             `json:"mesaj,omitempty"`
	Hata              string             `json:"hata,omitempty"`
}

// GetLegacyTomorrowForecast responde /tahmin/yarin no formato do painel antigo
func GetLegacyTomorrowForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forecast := service.GetTomorrowForecast(r.Context())
		annotateRequest(r, forecast.Success, forecast.Code, "")

		writeJSON(w, r, http.StatusOK, toLegacySalesForecast(forecast))
	}
}

// GetLegacyStockForecast responde /tahmin/stok no formato do painel antigo, sem filtros
func GetLegacyStockForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := service.GetStockForecastReport(r.Context(), domain.StockFilter{})
		annotateRequest(r, report.Success, report.Code, report.AnalysisID)

		writeJSON(w, r, http.StatusOK, toLegacyStockReport(report))
	}
}

func toLegacySalesForecast(f domain.SalesForecast) legacySalesForecast {
	return legacySalesForecast{
		Basari:            f.Success,
		Tarih:             f.TargetDate,
		GunAdi:            forecasting.WeekdayName(f.Weekday, legacyLocale),
		TahminiSatis:      f.PredictedUnits,
		TahminiCiro:       f.PredictedRevenue,
		OrtalamaSatis7gun: f.AvgUnits7d,
		OrtalamaCiro7gun:  f.AvgRevenue7d,
		SatisDegisimYuzde: f.PctChangeUnits,
		CiroDegisimYuzde:  f.PctChangeRevenue,
		Mesaj:             legacyMessage(f.Code, f.Message),
		Hata:              f.Error,
	}
}

func toLegacyStockReport(report domain.StockForecastReport) legacyStockReport {
	legacy := legacyStockReport{
		Basari:            report.Success,
		AnalizTarihi:      report.AnalyzedAt,
		ToplamUrun:        report.TotalProducts,
		KritikUrunSayisi:  report.CriticalCount,
		TukenenUrunSayisi: report.DepletedCount,
		Mesaj:             legacyMessage(report.Code, report.Message),
		Hata:              report.Error,
	}

	if report.Success {
		legacy.KritikUrunler = toLegacyEntries(report.TopCritical)
		legacy.TumUrunler = toLegacyEntries(report.AllEntries)
	}

	return legacy
}

func toLegacyEntries(entries []domain.StockForecastEntry) []legacyStockEntry {
	out := make([]legacyStockEntry, 0, len(entries))
	for _, entry := range entries {
		category := entry.Category
		if category == forecasting.Uncategorized {
			category = "Kategorisiz"
		}

		depletionDate := entry.DepletionDate
		if depletionDate == forecasting.UndeterminedDepletion {
			depletionDate = "Belirsiz (satış yok)"
		}

		out = append(out, legacyStockEntry{
			UrunID:               entry.ProductID,
			UrunAdi:              entry.Name,
			Kategori:             category,
			MevcutStok:           entry.CurrentStock,
			GunlukSatisOrtalama:  entry.AvgDailySales,
			TahminiKalanGun:      entry.DaysRemaining,
			TahminiTukenmeTarihi: depletionDate,
			Aciliyet:             legacyUrgency[entry.Urgency],
			AciliyetRenk:         entry.UrgencyColor,
		})
	}
	return out
}

func legacyMessage(code, message string) string {
	if translated, ok := legacyMessages[code]; ok {
		return translated
	}
	return message
}
