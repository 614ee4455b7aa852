package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SunceWallet/txrep/internal/service"
	"github.com/SunceWallet/txrep/pkg/config"
	"github.com/SunceWallet/txrep/pkg/ledger"
	"github.com/SunceWallet/txrep/pkg/txrep"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "JSON 交易 -> txrep 文本",
	Long:  `读取 {"tx": {...}} 格式的 JSON 交易，校验后输出 txrep 文本。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		annotate, _ := cmd.Flags().GetBool("annotate")

		data, err := readInput(cmd, input)
		if err != nil {
			return err
		}
		env, err := ledger.ParseEnvelopeJSON(data)
		if err != nil {
			return err
		}
		if _, isFeeBump := env.(ledger.FeeBumpTransaction); !isFeeBump {
			if err := ledger.Validate(env); err != nil {
				return err
			}
		}

		var opts []txrep.Option
		if annotate || config.Global.Txrep.Annotate {
			opts = append(opts, txrep.WithAnnotations())
		}
		text, err := service.NewTxrepService(txrep.New(opts...), nil).Encode(env)
		if err != nil {
			return err
		}
		return writeOutput(cmd, output, []byte(text+"\n"))
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("input", "i", "-", "JSON 交易文件，- 为标准输入")
	encodeCmd.Flags().StringP("output", "o", "-", "输出文件，- 为标准输出")
	encodeCmd.Flags().Bool("annotate", false, "为金额和时间附加注释")
}
