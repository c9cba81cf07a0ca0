package confirm_booking

import "math"

// splitPrice делит зафиксированную цену окна на доли по слотам.
// Доли округляются до сотых, остаток от округления уходит в последнюю долю,
// чтобы сумма долей всегда равнялась исходной цене
func splitPrice(total float64, count int) []float64 {
	shares := make([]float64, count)

	share := math.Round(total/float64(count)*100) / 100

	var accumulated float64
	for i := 0; i < count-1; i++ {
		shares[i] = share
		accumulated += share
	}
	shares[count-1] = math.Round((total-accumulated)*100) / 100

	return shares
}
