package models

// Regions
const (
	RegionHokkaido = "北海道"
	RegionTohoku   = "東北"
	RegionKanto    = "関東"
	RegionChubu    = "中部"
	RegionKinki    = "近畿"
	RegionChugoku  = "中国"
	RegionShikoku  = "四国"
	RegionKyushu   = "九州"
)

// Sales persons
const (
	PersonTanaka    = "田中太郎"
	PersonSato      = "佐藤花子"
	PersonSuzuki    = "鈴木一郎"
	PersonTakahashi = "高橋美咲"
	PersonIto       = "伊藤健太"
	PersonWatanabe  = "渡辺さくら"
	PersonYamamoto  = "山本大輔"
	PersonNakamura  = "中村愛"
	PersonKobayashi = "小林直樹"
	PersonKato      = "加藤美穂"
)

// Products
const (
	ProductA = "製品A"
	ProductB = "製品B"
	ProductC = "製品C"
	ProductD = "製品D"
	ProductE = "製品E"
	ServiceX = "サービスX"
	ServiceY = "サービスY"
)

// Product categories
const (
	CategorySubscription = "サブスク"
	CategoryOneTime      = "単発"
	CategoryAddOn        = "追加オプション"
	CategoryMaintenance  = "保守"
	CategoryOther        = "その他"
)
