package masterdata_test

const groupJSON = `{
  "groups": [
    {"id": 10, "requiredItemIdList": [0, 7]},
    {"id": 11, "requiredItemIdList": [3, 4, 5]}
  ]
}`

const recipeJSON = `{
  "recipes": [
    {
      "id": 1,
      "name": "Wooden Chair",
      "station": "Windmill",
      "requiredItemList": ["(101, 2)", "(10, 3)", "(0, 0)"],
      "requiredItemTypeList": [0, 2, 0]
    },
    {
      "id": 2,
      "name": "Vegetable Soup",
      "station": "cooking",
      "requiredItemList": ["(4, 1)"],
      "requiredItemTypeList": [1]
    },
    {
      "id": 3,
      "name": "Wooden Table",
      "station": "windmill",
      "requiredItemList": [],
      "requiredItemTypeList": []
    }
  ]
}`
