package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// ReciboData carries everything needed to render a receipt without
// touching the database from the worker.
type ReciboData struct {
	PedidoID       string
	Numero         int
	Mesa           *int
	Cliente        *string
	Itens          []ReciboItem
	Total          decimal.Decimal
	FormaPagamento string
	FechadoEm      time.Time
}

type ReciboItem struct {
	Produto       string
	Quantidade    int
	PrecoUnitario decimal.Decimal
	Subtotal      decimal.Decimal
}

// GerarReciboPDF renders a thermal-printer style receipt and writes it
// under dir. Returns the absolute path of the generated file.
func GerarReciboPDF(data ReciboData, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("pdf: criar diretório: %w", err)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: 80, Ht: 200},
	})
	pdf.SetMargins(5, 5, 5)
	pdf.AddPage()

	pdf.SetFont("Courier", "B", 11)
	pdf.CellFormat(70, 5, "COMANDA", "", 1, "C", false, 0, "")
	pdf.SetFont("Courier", "", 8)
	pdf.CellFormat(70, 4, fmt.Sprintf("Pedido #%d", data.Numero), "", 1, "C", false, 0, "")
	pdf.CellFormat(70, 4, data.FechadoEm.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	if data.Mesa != nil {
		pdf.CellFormat(70, 4, fmt.Sprintf("Mesa %d", *data.Mesa), "", 1, "C", false, 0, "")
	}
	if data.Cliente != nil {
		pdf.CellFormat(70, 4, *data.Cliente, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	linha := func() {
		pdf.SetFont("Courier", "", 8)
		pdf.CellFormat(70, 3, "------------------------------------", "", 1, "C", false, 0, "")
	}

	linha()
	pdf.SetFont("Courier", "B", 8)
	pdf.CellFormat(34, 4, "Item", "", 0, "L", false, 0, "")
	pdf.CellFormat(8, 4, "Qtd", "", 0, "R", false, 0, "")
	pdf.CellFormat(14, 4, "Unit", "", 0, "R", false, 0, "")
	pdf.CellFormat(14, 4, "Total", "", 1, "R", false, 0, "")
	linha()

	pdf.SetFont("Courier", "", 8)
	for _, item := range data.Itens {
		nome := item.Produto
		if len(nome) > 18 {
			nome = nome[:18]
		}
		pdf.CellFormat(34, 4, nome, "", 0, "L", false, 0, "")
		pdf.CellFormat(8, 4, fmt.Sprintf("%d", item.Quantidade), "", 0, "R", false, 0, "")
		pdf.CellFormat(14, 4, item.PrecoUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(14, 4, item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	linha()
	pdf.SetFont("Courier", "B", 10)
	pdf.CellFormat(40, 6, "TOTAL", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "R$ "+data.Total.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Courier", "", 8)
	pdf.CellFormat(70, 4, "Pagamento: "+data.FormaPagamento, "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.CellFormat(70, 4, "Obrigado pela preferência!", "", 1, "C", false, 0, "")

	path := filepath.Join(dir, fmt.Sprintf("recibo_%s.pdf", data.PedidoID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("pdf: gravar recibo: %w", err)
	}
	return path, nil
}
