package registry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 28, reg.Len())
	assert.Len(t, reg.ResultEntries(), 20)
	assert.Len(t, reg.ByProvider(ProviderGuidi), 7)
	assert.Len(t, reg.ByProvider(ProviderNYOpenData), 2)

	megaSena, ok := reg.Lookup("mega-sena")
	require.True(t, ok)
	assert.Equal(t, "megasena", megaSena.Results.UpstreamID)
	assert.Equal(t, ProviderGuidi, megaSena.Jackpot.Provider)
	assert.Equal(t, "R$", megaSena.Symbol)

	germanLotto, ok := reg.Lookup("german-lotto")
	require.True(t, ok)
	assert.Equal(t, "german6aus49", germanLotto.Results.UpstreamID)
	assert.Equal(t, "lotto6aus49", germanLotto.Jackpot.UpstreamID)
	assert.Equal(t, []string{"superzahl", "superZahl", "bonus"}, germanLotto.ExtrasFields)

	powerball, ok := reg.Lookup("powerball")
	require.True(t, ok)
	assert.Equal(t, ProviderNYOpenData, powerball.Results.Provider)
	assert.Equal(t, ProviderLottoland, powerball.Jackpot.Provider)

	_, ok = reg.Lookup("loteria-inexistente")
	assert.False(t, ok)
}

func TestDefault_UniqueSlugs(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, entry := range reg.All() {
		assert.False(t, seen[entry.Slug], "slug repetido: %s", entry.Slug)
		seen[entry.Slug] = true

		_, err := entry.Location()
		assert.NoError(t, err, entry.Slug)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		errMsg  string
		wantLen int
	}{
		{
			name: "Catálogo válido",
			yaml: `
lotteries:
  - slug: quina
    name: Quina
    currency: BRL
    symbol: R$
    results: {provider: guidi, upstream_id: quina}
`,
			wantLen: 1,
		},
		{
			name: "Slug duplicado",
			yaml: `
lotteries:
  - slug: quina
    name: Quina
    currency: BRL
    symbol: R$
    results: {provider: guidi, upstream_id: quina}
  - slug: quina
    name: Quina 2
    currency: BRL
    symbol: R$
    jackpot: {provider: guidi, upstream_id: quina}
`,
			wantErr: ErrDuplicateSlug,
		},
		{
			name: "Loteria sem fonte",
			yaml: `
lotteries:
  - slug: quina
    name: Quina
    currency: BRL
    symbol: R$
`,
			wantErr: ErrNoSource,
		},
		{
			name: "Provedor desconhecido",
			yaml: `
lotteries:
  - slug: quina
    name: Quina
    currency: BRL
    symbol: R$
    results: {provider: caixa, upstream_id: quina}
`,
			errMsg: "provider",
		},
		{
			name: "Campos obrigatórios ausentes",
			yaml: `
lotteries:
  - slug: quina
    results: {provider: guidi, upstream_id: quina}
`,
			errMsg: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := Load([]byte(tt.yaml))

			switch {
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), err.Error())
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantLen, reg.Len())
			}
		})
	}
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	reg, err := New([]Entry{
		{Slug: "quina", Name: "Quina", Results: &UpstreamSource{Provider: ProviderGuidi, UpstreamID: "quina"}},
	})
	require.NoError(t, err)

	all := reg.All()
	all[0].Slug = "alterado"

	entry, ok := reg.Lookup("quina")
	assert.True(t, ok)
	assert.Equal(t, "quina", entry.Slug)
}
