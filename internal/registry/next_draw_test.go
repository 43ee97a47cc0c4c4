package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_NextDraw(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	megaSena := Entry{
		Slug:     "mega-sena",
		DrawDays: []string{"terça", "quinta", "sábado"},
		DrawTime: "20:00",
		Timezone: "America/Sao_Paulo",
	}

	tests := []struct {
		name  string
		entry Entry
		now   time.Time
		want  time.Time
	}{
		{
			name:  "Segunda-feira aponta para terça às 20h",
			entry: megaSena,
			now:   time.Date(2025, 6, 2, 10, 0, 0, 0, saoPaulo),
			want:  time.Date(2025, 6, 3, 20, 0, 0, 0, saoPaulo),
		},
		{
			name:  "Terça antes do horário aponta para o mesmo dia",
			entry: megaSena,
			now:   time.Date(2025, 6, 3, 19, 59, 0, 0, saoPaulo),
			want:  time.Date(2025, 6, 3, 20, 0, 0, 0, saoPaulo),
		},
		{
			name:  "Terça no horário exato aponta para quinta",
			entry: megaSena,
			now:   time.Date(2025, 6, 3, 20, 0, 0, 0, saoPaulo),
			want:  time.Date(2025, 6, 5, 20, 0, 0, 0, saoPaulo),
		},
		{
			name:  "Sábado após o sorteio vira a semana",
			entry: megaSena,
			now:   time.Date(2025, 6, 7, 21, 0, 0, 0, saoPaulo),
			want:  time.Date(2025, 6, 10, 20, 0, 0, 0, saoPaulo),
		},
		{
			name:  "Instante em UTC é convertido para o fuso da loteria",
			entry: megaSena,
			now:   time.Date(2025, 6, 3, 23, 30, 0, 0, time.UTC),
			want:  time.Date(2025, 6, 5, 20, 0, 0, 0, saoPaulo),
		},
		{
			name:  "Sem dias configurados usa o dia seguinte",
			entry: Entry{Slug: "sem-dias", DrawTime: "18:30"},
			now:   time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
			want:  time.Date(2025, 6, 4, 18, 30, 0, 0, time.UTC),
		},
		{
			name:  "Dias sem acento são aceitos",
			entry: Entry{Slug: "sem-acento", DrawDays: []string{"Sabado"}, Timezone: "America/Sao_Paulo"},
			now:   time.Date(2025, 6, 2, 10, 0, 0, 0, saoPaulo),
			want:  time.Date(2025, 6, 7, 20, 0, 0, 0, saoPaulo),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.entry.NextDraw(tt.now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "esperado %s, obtido %s", tt.want, got)
		})
	}
}

func TestEntry_NextDraw_InvalidConfig(t *testing.T) {
	_, err := Entry{Slug: "x", Timezone: "Marte/Base"}.NextDraw(time.Now())
	assert.Error(t, err)

	_, err = Entry{Slug: "x", DrawTime: "25:00"}.NextDraw(time.Now())
	assert.Error(t, err)

	_, err = Entry{Slug: "x", DrawTime: "vinte"}.NextDraw(time.Now())
	assert.Error(t, err)
}
