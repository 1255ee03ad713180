package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"requisicoes/internal/domain/entities"
)

// Header is the fixed column order shared by every export format.
var Header = []string{
	"Protocolo",
	"Status",
	"Prioridade",
	"Solicitante",
	"Email",
	"Telefone",
	"Departamento",
	"Empresa",
	"Centro de Custo",
	"Item",
	"Quantidade",
	"Unidade",
	"Especificações",
	"Justificativa",
	"Motivo da Compra",
	"Comprador",
	"Fornecedor",
	"Valor Orçado",
	"Valor Final",
	"Data de Criação",
	"Data de Aprovação",
	"Data da Compra",
	"Data de Recebimento",
}

const dateLayout = "02/01/2006 15:04"

// Row renders r in Header order. Labels come from catalog; absent values are empty.
func Row(r entities.Requisition, catalog entities.StatusCatalog) []string {
	return []string{
		r.Protocol,
		catalog.StatusLabel(r.Status),
		catalog.PriorityLabel(r.Priority),
		r.Requester.Name,
		r.Requester.Email,
		r.Requester.Phone,
		r.Requester.Department,
		r.Requester.Company,
		r.CostCenter,
		r.ItemName,
		formatQuantity(r.Quantity),
		r.Unit,
		r.Specifications,
		r.Justification,
		r.PurchaseReason,
		r.BuyerName,
		r.SupplierName,
		formatMoney(r.BudgetedValue),
		formatMoney(r.FinalValue),
		formatDate(&r.CreatedAt),
		formatDate(r.ApprovedAt),
		formatDate(r.PurchasedAt),
		formatDate(r.ReceivedAt),
	}
}

func Rows(items []entities.Requisition, catalog entities.StatusCatalog) [][]string {
	out := make([][]string, 0, len(items))
	for _, r := range items {
		out = append(out, Row(r, catalog))
	}
	return out
}

func formatQuantity(q float64) string {
	return strings.Replace(strconv.FormatFloat(q, 'f', -1, 64), ".", ",", 1)
}

func formatMoney(v decimal.NullDecimal) string {
	if !v.Valid {
		return ""
	}
	return strings.Replace(v.Decimal.StringFixed(2), ".", ",", 1)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
