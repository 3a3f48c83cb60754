package domain

// Campaign representa uma campanha importada da plataforma de anúncios.
// O ID é o identificador externo da campanha.
type Campaign struct {
	ID             int64  `json:"id"`
	StructureValue string `json:"structure_value"`
	Status         string `json:"status"`
}

// AdGroup representa um grupo de anúncios pertencente a uma campanha
type AdGroup struct {
	ID         int64     `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	Alias      string    `json:"alias"`
	Status     string    `json:"status"`
	Campaign   *Campaign `json:"campaign,omitempty"`
}
