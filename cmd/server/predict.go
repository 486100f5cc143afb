package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"ev-range-service/internal/adapters/primary/http/dto"
	"ev-range-service/internal/config"
	"ev-range-service/internal/core/services"

	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
)

func newPredictCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the range of one vehicle given as JSON",
		Long: "Reads a vehicle specification in the JSON API format from --input " +
			"(or stdin) and prints the predicted driving range.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			initLogger(cfg)

			var r io.Reader = cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				r = f
			}

			var req dto.PredictionRequest
			if err := json.NewDecoder(r).Decode(&req); err != nil {
				return fmt.Errorf("decode input: %w", err)
			}
			if err := binding.Validator.ValidateStruct(&req); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}
			spec, err := dto.ToVehicleSpec(req)
			if err != nil {
				return err
			}

			model, err := loadModel(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("load model: %w", err)
			}

			prediction, err := services.NewPredictionService(model, nil).Predict(cmd.Context(), spec)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.ToPredictionResponse(prediction))
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "vehicle specification file (default stdin)")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the model input schema and the accepted categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.NewSchemaResponse())
		},
	}
}
