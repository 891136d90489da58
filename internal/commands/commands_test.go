package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/barberbook/internal/activity"
	"github.com/cleared-dev/barberbook/internal/commands"
	"github.com/cleared-dev/barberbook/internal/config"
	"github.com/cleared-dev/barberbook/internal/model"
	"github.com/cleared-dev/barberbook/internal/schema"
	"github.com/cleared-dev/barberbook/internal/store"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// setup initializes a shop in a temp dir and returns its config path and storage dir.
func setup(t *testing.T, extra ...string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	args := append([]string{"init", dir, "--name", "Barbearia Teste"}, extra...)
	_, err := run(t, "", args...)
	require.NoError(t, err)
	return filepath.Join(dir, config.FileName), filepath.Join(dir, "planilhas_de_servico")
}

func loadRecords(t *testing.T, path string) []model.ServiceRecord {
	t.Helper()
	st := store.New(store.DefaultRegistry(store.DefaultSheet), schema.NewNormalizer(schema.DefaultPlaceholder, nil))
	records, found, err := st.Load(path)
	require.NoError(t, err)
	require.True(t, found, "artifact %s should exist", path)
	return records
}

func TestInit_CreatesStructure(t *testing.T) {
	cfgPath, storageDir := setup(t)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Barbearia Teste", cfg.Business.Name)
	assert.Equal(t, config.FormatXLSX, cfg.Storage.Format)

	info, err := os.Stat(storageDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.FileExists(t, filepath.Join(storageDir, "catalog.csv"))
}

func TestInit_RefusesExistingConfig(t *testing.T) {
	cfgPath, _ := setup(t)
	_, err := run(t, "", "init", filepath.Dir(cfgPath), "--name", "Outra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_RejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "", "init", t.TempDir(), "--name", "X", "--format", "ods")
	require.Error(t, err)
}

func TestAdd_CreatesThenIncrements(t *testing.T) {
	cfgPath, storageDir := setup(t, "--format", "csv")
	file := filepath.Join(storageDir, "balanco_diario_15032024.csv")

	out, err := run(t, "", "-c", cfgPath, "add", "corte_masculino", "--client", "João", "--age", "30", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Serviço registrado")

	out, err = run(t, "", "-c", cfgPath, "add", "Corte_Masculino", "--client", "joão", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Quantidade atualizada")

	records := loadRecords(t, file)
	require.Len(t, records, 1)
	assert.Equal(t, "João", records[0].Client)
	assert.Equal(t, 30, records[0].Age)
	assert.Equal(t, 2, records[0].Quantity)
	assert.Equal(t, "35", records[0].UnitPrice.String())
}

func TestAdd_DefaultsToPlaceholderClient(t *testing.T) {
	cfgPath, storageDir := setup(t)
	file := filepath.Join(storageDir, "balanco_diario_15032024.xlsx")

	_, err := run(t, "", "-c", cfgPath, "add", "barba", "--file", file)
	require.NoError(t, err)

	records := loadRecords(t, file)
	require.Len(t, records, 1)
	assert.Equal(t, "geral", records[0].Client)
}

func TestAdd_UnknownServiceWritesNothing(t *testing.T) {
	cfgPath, storageDir := setup(t)
	file := filepath.Join(storageDir, "balanco_diario_15032024.xlsx")

	out, err := run(t, "", "-c", cfgPath, "add", "massagem", "--client", "Ana", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "não encontrado")
	assert.Contains(t, out, "barba")
	assert.NoFileExists(t, file)
}

func TestRemove_EmptyLedger(t *testing.T) {
	cfgPath, storageDir := setup(t)
	file := filepath.Join(storageDir, "balanco_diario_15032024.xlsx")

	out, err := run(t, "", "-c", cfgPath, "remove", "--yes", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Nenhum serviço para remover")
	assert.NoFileExists(t, file)
}

func TestRemove_LastRecord(t *testing.T) {
	cfgPath, storageDir := setup(t)
	file := filepath.Join(storageDir, "balanco_diario_15032024.xlsx")

	_, err := run(t, "", "-c", cfgPath, "add", "barba", "--client", "Ana", "--file", file)
	require.NoError(t, err)
	_, err = run(t, "", "-c", cfgPath, "add", "sobrancelha", "--client", "Ana", "--file", file)
	require.NoError(t, err)

	out, err := run(t, "", "-c", cfgPath, "remove", "--yes", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Removido: sobrancelha de Ana")

	records := loadRecords(t, file)
	require.Len(t, records, 1)
	assert.Equal(t, "barba", records[0].Service)

	entries, err := activity.Read(storageDir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, activity.ActionRemove, entries[2].Action)
}

func TestListAndSummary(t *testing.T) {
	cfgPath, storageDir := setup(t)
	file := filepath.Join(storageDir, "balanco_diario_15032024.xlsx")

	for _, args := range [][]string{
		{"add", "barba", "--client", "Ana"},
		{"add", "corte_masculino", "--client", "Bruno"},
		{"add", "barba", "--client", "ana"},
	} {
		_, err := run(t, "", append(append([]string{"-c", cfgPath}, args...), "--file", file)...)
		require.NoError(t, err)
	}

	out, err := run(t, "", "-c", cfgPath, "list", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Bruno")
	assert.Contains(t, out, "R$85.00")

	out, err = run(t, "", "-c", cfgPath, "summary", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Total de serviços: 3")
	assert.Contains(t, out, "Valor arrecadado: R$85.00")
	assert.Contains(t, out, "Cliente com mais serviços: Ana (2)")
	assert.Contains(t, out, "Cliente com maior gasto: Ana (R$50.00)")
}

func TestList_ChoosesFromMenu(t *testing.T) {
	cfgPath, storageDir := setup(t)
	older := filepath.Join(storageDir, "balanco_diario_01012024.xlsx")
	newer := filepath.Join(storageDir, "balanco_diario_02012024.xlsx")

	_, err := run(t, "", "-c", cfgPath, "add", "barba", "--client", "Velho", "--file", older)
	require.NoError(t, err)
	_, err = run(t, "", "-c", cfgPath, "add", "barba", "--client", "Novo", "--file", newer)
	require.NoError(t, err)

	out, err := run(t, "2\n", "-c", cfgPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1 - balanco_diario_02012024.xlsx")
	assert.Contains(t, out, "2 - balanco_diario_01012024.xlsx")
	assert.Contains(t, out, "Velho")
	assert.NotContains(t, out, "Novo")

	_, err = run(t, "9\n", "-c", cfgPath, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid option")
}

func TestShell_Session(t *testing.T) {
	cfgPath, storageDir := setup(t)
	file := filepath.Join(storageDir, "balanco_diario_15032024.xlsx")

	script := strings.Join([]string{
		"ajuda",
		"add barba 25 Carlos Lima",
		"add barba Carlos Lima",
		"add massagem",
		"add sobrancelha",
		"remover",
		"resumo",
		"voar",
		"sair",
	}, "\n") + "\n"

	out, err := run(t, script, "-c", cfgPath, "shell", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Barbearia Teste")
	assert.Contains(t, out, "Comandos:")
	assert.Contains(t, out, "Quantidade atualizada: barba para Carlos Lima agora 2")
	assert.Contains(t, out, `Serviço "massagem" não encontrado.`)
	assert.Contains(t, out, "Removido: sobrancelha de geral")
	assert.Contains(t, out, "Comando desconhecido: voar")
	assert.Contains(t, out, "Planilha salva em")

	records := loadRecords(t, file)
	require.Len(t, records, 1)
	assert.Equal(t, "Carlos Lima", records[0].Client)
	assert.Equal(t, 25, records[0].Age)
	assert.Equal(t, 2, records[0].Quantity)
}

func TestShell_HelpShowsPriceList(t *testing.T) {
	cfgPath, storageDir := setup(t)
	file := filepath.Join(storageDir, "balanco_diario_15032024.xlsx")

	out, err := run(t, "ajuda\nsair\n", "-c", cfgPath, "shell", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Comandos:")
	assert.Contains(t, out, "corte_masculino")
	assert.Contains(t, out, "R$35.00")
}

func TestShell_EOFSaves(t *testing.T) {
	cfgPath, storageDir := setup(t)
	file := filepath.Join(storageDir, "balanco_diario_15032024.xlsx")

	_, err := run(t, "add barba 40 Rui", "-c", cfgPath, "shell", "--file", file)
	require.NoError(t, err)

	records := loadRecords(t, file)
	require.Len(t, records, 1)
	assert.Equal(t, "Rui", records[0].Client)
}

func TestShell_MalformedArtifactStartsEmpty(t *testing.T) {
	cfgPath, storageDir := setup(t, "--format", "csv")
	file := filepath.Join(storageDir, "balanco_diario_15032024.csv")
	require.NoError(t, os.WriteFile(file, []byte("foo,bar\n1,2\n"), 0o644))

	out, err := run(t, "listar\nsair\n", "-c", cfgPath, "shell", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "formato inválido")
	assert.Contains(t, out, "Nenhum serviço registrado.")
}

func TestCatalog_ListAndSet(t *testing.T) {
	cfgPath, storageDir := setup(t)

	out, err := run(t, "", "-c", cfgPath, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "corte_masculino")
	assert.Contains(t, out, "R$35.00")

	_, err = run(t, "", "-c", cfgPath, "catalog", "set", "barba", "30")
	require.NoError(t, err)
	_, err = run(t, "", "-c", cfgPath, "catalog", "set", "massagem", "--", "-5")
	require.Error(t, err)

	file := filepath.Join(storageDir, "balanco_diario_15032024.xlsx")
	_, err = run(t, "", "-c", cfgPath, "add", "barba", "--file", file)
	require.NoError(t, err)
	records := loadRecords(t, file)
	require.Len(t, records, 1)
	assert.Equal(t, "30", records[0].UnitPrice.String())
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	cfgPath, storageDir := setup(t)
	a := filepath.Join(storageDir, "a.xlsx")
	b := filepath.Join(storageDir, "b.xlsx")

	_, err := run(t, "", "-c", cfgPath, "generate", "--rows", "10", "--seed", "7", "--out", a)
	require.NoError(t, err)
	_, err = run(t, "", "-c", cfgPath, "generate", "--rows", "10", "--seed", "7", "--out", b)
	require.NoError(t, err)

	ra, rb := loadRecords(t, a), loadRecords(t, b)
	require.NotEmpty(t, ra)
	assert.Equal(t, ra, rb)
}

func TestArtifacts_ListsInSelectorOrder(t *testing.T) {
	cfgPath, storageDir := setup(t)

	out, err := run(t, "", "-c", cfgPath, "artifacts")
	require.NoError(t, err)
	assert.Contains(t, out, "Nenhuma planilha encontrada.")

	for _, name := range []string{"balanco_diario_31012024.xlsx", "balanco_diario_01022024.xlsx", "outro.xlsx"} {
		require.NoError(t, os.WriteFile(filepath.Join(storageDir, name), nil, 0o644))
	}

	out, err = run(t, "", "-c", cfgPath, "artifacts")
	require.NoError(t, err)
	assert.NotContains(t, out, "outro.xlsx")
	first := strings.Index(out, "balanco_diario_31012024.xlsx")
	second := strings.Index(out, "balanco_diario_01022024.xlsx")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}
