package domain

type Source string

const (
	SourceAPI      Source = "api"
	SourceFallback Source = "fallback"
)

const (
	// RolloverPrize marca um sorteio sem ganhador na faixa principal
	RolloverPrize = "Acumulou!"
	// MissingValue é usado no lugar de um valor monetário desconhecido
	MissingValue = "—"
)

// LotteryResult representa o último sorteio de uma loteria
type LotteryResult struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	Numbers   []int  `json:"numbers"`
	Extras    []int  `json:"extras"`
	Date      string `json:"date"`
	Prize     string `json:"prize"`
	Concurso  string `json:"concurso"`
	NextPrize string `json:"nextPrize,omitempty"`
	NextDate  string `json:"nextDate,omitempty"`
}

// JackpotData representa o prêmio estimado do próximo sorteio
type JackpotData struct {
	Slug       string  `json:"slug"`
	Jackpot    string  `json:"jackpot"`
	JackpotRaw float64 `json:"jackpotRaw,omitempty"`
	NextDraw   string  `json:"nextDraw,omitempty"`
	Source     Source  `json:"source"`
}

type CatalogItem struct {
	Slug     string      `json:"slug"`
	Name     string      `json:"name"`
	Country  string      `json:"country"`
	Currency string      `json:"currency"`
	DrawDays []string    `json:"drawDays"`
	DrawTime string      `json:"drawTime"`
	Timezone string      `json:"timezone"`
	NextDraw string      `json:"nextDraw,omitempty"`
	Jackpot  JackpotData `json:"jackpot"`
}
