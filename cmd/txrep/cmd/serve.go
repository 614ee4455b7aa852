package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SunceWallet/txrep/internal/handler"
	"github.com/SunceWallet/txrep/internal/server"
	"github.com/SunceWallet/txrep/internal/service"
	"github.com/SunceWallet/txrep/pkg/config"
	"github.com/SunceWallet/txrep/pkg/monitor"
	"github.com/SunceWallet/txrep/pkg/txrep"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 编解码服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Global
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.App.HttpPort = port
		}

		if cfg.Metrics.Enabled {
			monitor.Init()
		}
		var opts []txrep.Option
		if cfg.Txrep.Annotate {
			opts = append(opts, txrep.WithAnnotations())
		}

		svc := service.NewTxrepService(txrep.New(opts...), monitor.Codec)
		r := server.NewHTTPRouter(
			server.RouterConfig{Metrics: cfg.Metrics.Enabled},
			handler.NewTxrepHandler(svc, cfg.Txrep.MaxBodyBytes),
		)
		return server.New(server.Config{HttpPort: cfg.App.HttpPort}, r).Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "", "HTTP 端口，覆盖 app.http_port")
}
