package shop

import "time"

// Store keys owned by the manager.
const (
	KeyCart             = "cart"
	KeyUserData         = "userData"
	KeyLastOrder        = "lastOrder"
	KeyOrderHistory     = "orderHistory"
	KeyTrackOrderNumber = "trackOrderNumber"
)

const DefaultNavigationDelay = 2 * time.Second

const (
	MsgItemAdded        = "Product added to cart!"
	MsgItemRemoved      = "Product removed from cart"
	MsgLoggedIn         = "Successfully logged in!"
	MsgSignedUp         = "Account created successfully!"
	MsgLoggedOut        = "Successfully logged out!"
	MsgLoginToPurchase  = "Please log in to complete your purchase"
	MsgLoginToCheckout  = "Please log in to proceed to checkout"
	MsgEmptyCart        = "Your cart is empty!"
	MsgSelectPayment    = "Please select a payment method"
	MsgShippingRequired = "Please fill in all required shipping fields."
	MsgOrderPlaced      = "Order placed successfully! Your order number is: %s"
	MsgEnterOrderNumber = "Please enter an order number"
)
