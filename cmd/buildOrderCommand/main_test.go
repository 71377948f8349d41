package buildOrderCommand

import (
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/t-aoki/kumitate/domain/service/configFindService"
	"github.com/t-aoki/kumitate/domain/service/entryPointScan"
	"github.com/t-aoki/kumitate/domain/service/orderMake"
	textsearchImpl "github.com/t-aoki/kumitate/infrastructure/external/textsearch"
	buildOrder2 "github.com/t-aoki/kumitate/infrastructure/repository/buildOrder"
	config2 "github.com/t-aoki/kumitate/infrastructure/repository/config"
	file2 "github.com/t-aoki/kumitate/infrastructure/repository/file"
	ksuid2 "github.com/t-aoki/kumitate/infrastructure/system/ksuid"
	timer2 "github.com/t-aoki/kumitate/infrastructure/system/timer"
	"github.com/t-aoki/kumitate/testUtil"
)

func TestBuildOrderCommand(t *testing.T) {
	callCommand := func(
		args []string,
	) error {
		fileRepo := file2.NewFileRepository()
		configRepo := config2.NewConfigRepository()
		buildOrderRepo := buildOrder2.NewRepository()
		finderFactory := textsearchImpl.NewFinderFactory()
		configFindSvc := configFindService.NewConfigFindService(fileRepo)
		entryPointScanSvc := entryPointScan.NewEntryPointScanService(fileRepo)
		orderMakeSvc := orderMake.NewOrderMakeService(
			configFindSvc,
			configRepo,
			entryPointScanSvc,
			finderFactory,
			buildOrderRepo,
			timer2.NewTimer(),
			ksuid2.NewKsuidGenerator(),
		)

		// コマンドの実行
		cmd := NewBuildOrderCommand(orderMakeSvc)
		rootCmd := &cobra.Command{}
		rootCmd.AddCommand(cmd.CobraCommand)
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	}

	configYml := []byte(`
import-scope: "@myorg"
marker-file: index.ts
source-extensions: [".ts"]
search:
  backend: scan
`)

	t.Run("依存の連鎖が依存先から順に並ぶこと", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		// a -> b -> c
		space.WriteFile("kumitate.yml", configYml)
		space.WriteFile("src/material/a/index.ts", []byte("import {B} from '@myorg/material/b';\n"))
		space.WriteFile("src/material/b/index.ts", []byte("import {C} from '@myorg/material/c';\n"))
		space.WriteFile("src/material/c/index.ts", []byte("export class C {}\n"))

		err := callCommand([]string{"build-order", "src/material"})
		assert.NoError(t, err)

		space.AssertFile(".kumitate/build-order/material.json", func(actual []byte) {
			expect := `
{
  "package": "@myorg/material",
  "order": [ "c", "b", "a" ]
}
`
			assert.JSONEq(t, expect, string(actual))
		})
		space.AssertExistPath(".kumitate/history")
	})

	t.Run("循環があってもエラーにならず全エントリポイントが1回ずつ現れること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		// a -> b -> a
		space.WriteFile("kumitate.yml", configYml)
		space.WriteFile("src/material/a/index.ts", []byte("import {B} from '@myorg/material/b';\n"))
		space.WriteFile("src/material/b/index.ts", []byte("import {A} from '@myorg/material/a';\n"))

		// 標準エラー出力への警告を検証するため差し替える
		originalStderr := os.Stderr
		r, w, err := os.Pipe()
		assert.NoError(t, err)
		os.Stderr = w

		err = callCommand([]string{"build-order", "src/material"})

		w.Close()
		os.Stderr = originalStderr
		captured, readErr := io.ReadAll(r)
		assert.NoError(t, readErr)

		assert.NoError(t, err)
		assert.Contains(t, string(captured), "warning: dependency cycle detected: a -> b -> a")

		space.AssertFile(".kumitate/build-order/material.json", func(actual []byte) {
			expect := `
{
  "package": "@myorg/material",
  "order": [ "b", "a" ]
}
`
			assert.JSONEq(t, expect, string(actual))
		})
	})

	t.Run("互いに依存しないエントリポイントは発見順に並ぶこと", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kumitate.yml", configYml)
		space.WriteFile("src/material/x/index.ts", []byte("export class X {}\n"))
		space.WriteFile("src/material/y/index.ts", []byte("export class Y {}\n"))

		err := callCommand([]string{"build-order", "src/material"})
		assert.NoError(t, err)

		space.AssertFile(".kumitate/build-order/material.json", func(actual []byte) {
			expect := `
{
  "package": "@myorg/material",
  "order": [ "x", "y" ]
}
`
			assert.JSONEq(t, expect, string(actual))
		})
	})

	t.Run("未発見のエントリポイントへの参照は無視されること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kumitate.yml", configYml)
		space.WriteFile("src/material/a/index.ts", []byte("import {Z} from '@myorg/material/z';\n"))
		space.WriteFile("src/material/b/index.ts", []byte("export class B {}\n"))

		err := callCommand([]string{"build-order", "src/material"})
		assert.NoError(t, err)

		space.AssertFile(".kumitate/build-order/material.json", func(actual []byte) {
			expect := `
{
  "package": "@myorg/material",
  "order": [ "a", "b" ]
}
`
			assert.JSONEq(t, expect, string(actual))
		})
	})

	t.Run("マーカーファイルを含まないディレクトリはエントリポイントにならないこと", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kumitate.yml", configYml)
		space.WriteFile("src/material/a/index.ts", []byte("export class A {}\n"))
		space.WriteFile("src/material/schematics/collection.json", []byte("{}\n"))

		err := callCommand([]string{"build-order", "src/material"})
		assert.NoError(t, err)

		space.AssertFile(".kumitate/build-order/material.json", func(actual []byte) {
			expect := `
{
  "package": "@myorg/material",
  "order": [ "a" ]
}
`
			assert.JSONEq(t, expect, string(actual))
		})
	})

	t.Run("package-nameフラグでimport文中のパッケージ名を上書きできること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kumitate.yml", configYml)
		space.WriteFile("src/material/a/index.ts", []byte("import {B} from '@custom/mat/b';\n"))
		space.WriteFile("src/material/b/index.ts", []byte("export class B {}\n"))

		err := callCommand([]string{"build-order", "src/material", "--package-name", "@custom/mat"})
		assert.NoError(t, err)

		space.AssertFile(".kumitate/build-order/material.json", func(actual []byte) {
			expect := `
{
  "package": "@custom/mat",
  "order": [ "b", "a" ]
}
`
			assert.JSONEq(t, expect, string(actual))
		})
	})

	t.Run("パッケージルートが存在しない場合はエラーになること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("kumitate.yml", configYml)

		err := callCommand([]string{"build-order", "src/no-such-package"})
		assert.Error(t, err)
	})
}
