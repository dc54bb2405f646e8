package utils

import "fmt"

// FormatEUR formata um valor monetário em euros para exibição nos digests.
func FormatEUR(amount float64) string {
	return fmt.Sprintf("€%.2f", amount)
}
