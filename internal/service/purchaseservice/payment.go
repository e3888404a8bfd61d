package purchaseservice

// PaymentKind is the closed set of supported payment methods.
type PaymentKind string

const (
	// PagoMovilPayment instant mobile bank payment, needs a reference;
	PagoMovilPayment PaymentKind = "pago_movil"
	// TransferPayment bank transfer, needs a reference, confirmed manually;
	TransferPayment PaymentKind = "transferencia"
	// CreditsPayment accumulated store credits, settles instantly;
	CreditsPayment PaymentKind = "creditos"
	// PointsPayment loyalty points, settles instantly.
	PointsPayment PaymentKind = "puntos"
)

type PaymentMethod struct {
	Kind               PaymentKind `json:"kind"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	RequiresReference  bool        `json:"requires_reference"`
	SettlesImmediately bool        `json:"settles_immediately"`
	Enabled            bool        `json:"enabled"`
}

var paymentMethods = []PaymentMethod{
	{
		Kind:               PagoMovilPayment,
		Name:               "Pago Móvil",
		Description:        "Pago instantáneo desde tu banco",
		RequiresReference:  true,
		SettlesImmediately: false,
		Enabled:            true,
	},
	{
		Kind:               TransferPayment,
		Name:               "Transferencia Bancaria",
		Description:        "Transferencia desde cualquier banco",
		RequiresReference:  true,
		SettlesImmediately: false,
		Enabled:            true,
	},
	{
		Kind:               CreditsPayment,
		Name:               "Mis Créditos",
		Description:        "Usar créditos acumulados",
		RequiresReference:  false,
		SettlesImmediately: true,
		Enabled:            true,
	},
	{
		Kind:               PointsPayment,
		Name:               "Mis Puntos",
		Description:        "Canjear puntos por números",
		RequiresReference:  false,
		SettlesImmediately: true,
		Enabled:            true,
	},
}

func PaymentMethods() []PaymentMethod {
	methods := make([]PaymentMethod, len(paymentMethods))
	copy(methods, paymentMethods)
	return methods
}

func MethodByKind(kind PaymentKind) (PaymentMethod, bool) {
	for _, m := range paymentMethods {
		if m.Kind == kind && m.Enabled {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
