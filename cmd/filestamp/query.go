package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"FileStamp/internal/domain/model"
	"FileStamp/internal/interface/bridge"
	"FileStamp/internal/usecase/report"
)

// errQueryFailed は更新日時の取得に失敗したことを終了コードに反映するためのエラーです
var errQueryFailed = errors.New("更新日時の取得に失敗しました")

func newQueryCommand(configPath *string) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "query <path>",
		Short: "ウィンドウを表示せずに modified_time を呼び出し、結果を出力します",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices(*configPath, cmd.ErrOrStderr())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "エラー: %v\n", err)
				return err
			}

			resp := svc.bridge.Invoke(bridge.ModifiedTimeCommand, bridge.NewModifiedTimeArgs(args[0]))
			if pretty {
				err = writePretty(cmd.OutOrStdout(), svc.formatter, resp)
			} else {
				err = writeJSON(cmd.OutOrStdout(), resp)
			}
			if err != nil {
				return err
			}

			if !resp.OK {
				return errQueryFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "JSONではなく表示形式で出力する")
	return cmd
}

func writeJSON(w io.Writer, resp bridge.Response) error {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("結果の出力に失敗しました: %w", err)
	}
	return nil
}

func writePretty(w io.Writer, formatter *report.Formatter, resp bridge.Response) error {
	if !resp.OK {
		return formatter.WriteResult(w, model.Timestamp{}, resp.Error)
	}

	var ts model.Timestamp
	if err := resp.Decode(&ts); err != nil {
		return err
	}
	return formatter.WriteResult(w, ts, "")
}
