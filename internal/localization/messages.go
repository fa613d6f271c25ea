package localization

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	MsgProducts           = "Products"
	MsgCart               = "Your cart"
	MsgCartEmpty          = "Your cart is empty"
	MsgCheckoutCartEmpty  = "Sorry, your cart is empty!"
	MsgOrderCompleted     = "Thank you for your order!"
	MsgProductNotFound    = "Product not found"
	MsgInvalidProductID   = "Invalid product ID"
	MsgInsufficientStock  = "Insufficient stock"
	MsgInvalidOrder       = "Please fill in all the order details"
	MsgInternalError      = "Something went wrong, please try again"
	MsgInvalidRequest     = "Invalid request"
	MsgInvalidQuantity    = "Quantity must be at least 1"
	MsgInvalidOrderID     = "Invalid order ID"
	MsgOrderNotFound      = "Order not found"
	MsgItemAdded          = "Item added to cart"
	MsgItemRemoved        = "Item removed from cart"
	MsgLanguageChanged    = "Language changed"
	MsgCheckout           = "Checkout"
	MsgOrderSummaryHeader = "Order summary"
)

var translations = map[language.Tag]map[string]string{
	language.French: {
		MsgProducts:           "Produits",
		MsgCart:               "Votre panier",
		MsgCartEmpty:          "Votre panier est vide",
		MsgCheckoutCartEmpty:  "Désolé, votre panier est vide !",
		MsgOrderCompleted:     "Merci pour votre commande !",
		MsgProductNotFound:    "Produit introuvable",
		MsgInvalidProductID:   "Identifiant de produit invalide",
		MsgInsufficientStock:  "Stock insuffisant",
		MsgInvalidOrder:       "Veuillez renseigner toutes les informations de la commande",
		MsgInternalError:      "Une erreur est survenue, veuillez réessayer",
		MsgInvalidRequest:     "Requête invalide",
		MsgInvalidQuantity:    "La quantité doit être d'au moins 1",
		MsgInvalidOrderID:     "Identifiant de commande invalide",
		MsgOrderNotFound:      "Commande introuvable",
		MsgItemAdded:          "Article ajouté au panier",
		MsgItemRemoved:        "Article retiré du panier",
		MsgLanguageChanged:    "Langue modifiée",
		MsgCheckout:           "Commander",
		MsgOrderSummaryHeader: "Récapitulatif de la commande",
	},
	language.Spanish: {
		MsgProducts:           "Productos",
		MsgCart:               "Su carrito",
		MsgCartEmpty:          "Su carrito está vacío",
		MsgCheckoutCartEmpty:  "Lo sentimos, ¡su carrito está vacío!",
		MsgOrderCompleted:     "¡Gracias por su pedido!",
		MsgProductNotFound:    "Producto no encontrado",
		MsgInvalidProductID:   "Identificador de producto no válido",
		MsgInsufficientStock:  "Stock insuficiente",
		MsgInvalidOrder:       "Por favor complete todos los datos del pedido",
		MsgInternalError:      "Algo salió mal, por favor inténtelo de nuevo",
		MsgInvalidRequest:     "Solicitud no válida",
		MsgInvalidQuantity:    "La cantidad debe ser al menos 1",
		MsgInvalidOrderID:     "Identificador de pedido no válido",
		MsgOrderNotFound:      "Pedido no encontrado",
		MsgItemAdded:          "Artículo añadido al carrito",
		MsgItemRemoved:        "Artículo eliminado del carrito",
		MsgLanguageChanged:    "Idioma cambiado",
		MsgCheckout:           "Finalizar compra",
		MsgOrderSummaryHeader: "Resumen del pedido",
	},
}

var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, strs := range translations {
		for key, msg := range strs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Printer returns a printer for culture, falling back to English.
func Printer(culture string) *message.Printer {
	tag := language.English
	switch Normalize(culture) {
	case French:
		tag = language.French
	case Spanish:
		tag = language.Spanish
	}
	return message.NewPrinter(tag, message.Catalog(messages))
}

func Translate(culture, key string) string {
	return Printer(culture).Sprintf(key)
}
