// Package catalog holds the records an order refers to by identifier:
// customers, restaurants and their products.
//
// These are thin entities. The order aggregate reads a restaurant's delivery
// fee and a product's price and availability, and never mutates them.
package catalog
