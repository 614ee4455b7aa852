package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SunceWallet/txrep/pkg/config"
	"github.com/SunceWallet/txrep/pkg/logger"
)

var (
	cfgFile string
	envName string
)

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "txrep",
	Short: "交易文本表示 (txrep) 编解码工具",
	Long: `txrep 在 JSON 交易与逐行的 txrep 文本之间互相转换。
encode/decode 读取文件或标准输入，serve 启动 HTTP 服务。`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init(cfgFile)
		if envName != "" {
			config.Global.App.Env = envName
		}
		logger.Init(config.Global.App.Env)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件 (默认 ./config.yaml 或 ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "运行环境 (development/production)，覆盖 app.env")
}

// readInput 读取 -i 指定的文件，未指定或为 "-" 时读取标准输入
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// writeOutput 写入 -o 指定的文件，未指定时写到标准输出
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
