package cmd

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/SunceWallet/txrep/internal/service"
	"github.com/SunceWallet/txrep/pkg/ledger"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "txrep 文本 -> JSON 交易",
	Long:  `解析 txrep 文本，输出带缩进的 {"tx": {...}} JSON。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")

		data, err := readInput(cmd, input)
		if err != nil {
			return err
		}
		tx, err := service.NewTxrepService(nil, nil).Decode(string(data))
		if err != nil {
			return err
		}

		raw, err := ledger.MarshalEnvelopeJSON(tx)
		if err != nil {
			return err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "  "); err != nil {
			return err
		}
		out.WriteByte('\n')
		return writeOutput(cmd, output, out.Bytes())
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("input", "i", "-", "txrep 文件，- 为标准输入")
	decodeCmd.Flags().StringP("output", "o", "-", "输出文件，- 为标准输出")
}
