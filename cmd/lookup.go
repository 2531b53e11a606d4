package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mercalabs/shelfscan/internal/erp"
	"github.com/mercalabs/shelfscan/internal/openfoodfacts"
)

func newLookupCmd() *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:   "lookup <barcode|name>",
		Short: "Look a product up in Open Food Facts",
		Example: `  # By barcode
  shelfscan lookup 7801234567

  # By name
  shelfscan lookup --name "leche entera"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := openfoodfacts.NewClient("")

			var (
				product *openfoodfacts.Product
				err     error
			)
			if byName {
				product, err = client.Search(cmd.Context(), args[0])
			} else {
				product, err = client.ProductByBarcode(cmd.Context(), args[0])
			}
			if err != nil {
				if errors.Is(err, openfoodfacts.ErrNotFound) {
					return fmt.Errorf("no product found for %q", args[0])
				}
				return err
			}

			fmt.Println(renderProduct(
				[]string{"Campo", "Valor"},
				[][]string{
					{"Nombre", product.ProductName},
					{"Código", product.Code},
					{"Marcas", product.Brands},
					{"Categorías", product.Categories},
					{"Categoría ERP", erp.CategoryFromTaxonomy(product.Categories)},
					{"Cantidad", product.Quantity},
					{"Porción", product.ServingSize},
					{"Grado nutricional", product.NutritionGrade},
				},
			))

			n := product.Nutriments
			fmt.Println(renderProduct(
				[]string{"Nutriente (100g)", "Valor"},
				[][]string{
					{"Energía (kcal)", fmt.Sprintf("%.1f", n.EnergyKcal)},
					{"Energía (kJ)", fmt.Sprintf("%.1f", n.EnergyKJ)},
					{"Grasas", fmt.Sprintf("%.1f", n.Fat)},
					{"Grasas saturadas", fmt.Sprintf("%.1f", n.SaturatedFat)},
					{"Carbohidratos", fmt.Sprintf("%.1f", n.Carbohydrates)},
					{"Azúcares", fmt.Sprintf("%.1f", n.Sugars)},
					{"Fibra", fmt.Sprintf("%.1f", n.Fiber)},
					{"Proteínas", fmt.Sprintf("%.1f", n.Proteins)},
					{"Sal", fmt.Sprintf("%.1f", n.Salt)},
					{"Sodio", fmt.Sprintf("%.1f", n.Sodium)},
				},
			))

			return nil
		},
	}

	cmd.Flags().BoolVar(&byName, "name", false, "Search by product name instead of barcode")

	return cmd
}
