package services_test

import (
	"fmt"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/services"
)

func ExampleTotalCalculator_OrderTotal() {
	calc := services.NewTotalCalculator()

	subtotal, err := calc.OrderSubtotal([]services.LineAmount{
		{UnitPrice: kernel.MustMoney("12.50"), Quantity: 2},
		{UnitPrice: kernel.MustMoney("3.75"), Quantity: 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	total, err := calc.OrderTotal(subtotal, kernel.MustMoney("5.00"))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(subtotal, total)
	// Output: 28.75 33.75
}
